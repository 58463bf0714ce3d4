package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS schedules (
    position    INTEGER     NOT NULL,
    provider_id TEXT        NOT NULL,
    date        TIMESTAMPTZ NOT NULL,
    start_time  TEXT        NOT NULL,
    end_time    TEXT        NOT NULL
);

CREATE TABLE IF NOT EXISTS reservations (
    position           INTEGER NOT NULL,
    date               TEXT    NOT NULL,
    time               TEXT    NOT NULL,
    client_id          TEXT    NOT NULL,
    provider_id        TEXT    NOT NULL,
    confirmed          BOOLEAN NOT NULL DEFAULT FALSE,
    creation_timestamp BIGINT  NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reservations_slot ON reservations (date, time, provider_id);
`

// EnsureSchema создает таблицы, если их нет
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}
