package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/psqlbuilder"
)

const (
	tableSchedules    = "schedules"
	tableReservations = "reservations"
)

// Store хранит смены и бронирования в PostgreSQL
// Сохранение заменяет содержимое таблицы целиком в одной транзакции, порядок хранится в position
type Store struct {
	db *sql.DB
}

// NewStore создает новый экземпляр хранилища
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadSchedules получает все смены в порядке сохранения
func (s *Store) LoadSchedules(ctx context.Context) ([]domain.Shift, error) {
	query, args, err := psqlbuilder.Select("provider_id", "date", "start_time", "end_time").
		From(tableSchedules).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0)
	for rows.Next() {
		var shift domain.Shift
		if err := rows.Scan(&shift.ProviderID, &shift.Date, &shift.StartTime, &shift.EndTime); err != nil {
			return nil, fmt.Errorf("%w: LoadSchedules - scan row: %v", ErrScanRow, err)
		}
		shift.Date = shift.Date.Local()
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadSchedules - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}

// SaveSchedules заменяет все смены
func (s *Store) SaveSchedules(ctx context.Context, shifts []domain.Shift) error {
	insert, args, err := buildInsertSchedules(shifts)
	if err != nil {
		return err
	}
	return s.replaceAll(ctx, tableSchedules, insert, args)
}

// LoadReservations получает все бронирования в порядке сохранения
func (s *Store) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(
		"date",
		"time",
		"client_id",
		"provider_id",
		"confirmed",
		"creation_timestamp",
	).
		From(tableReservations).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var (
			reservation domain.Reservation
			createdMs   int64
		)
		err := rows.Scan(
			&reservation.Date,
			&reservation.Time,
			&reservation.ClientID,
			&reservation.ProviderID,
			&reservation.Confirmed,
			&createdMs,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: LoadReservations - scan row: %v", ErrScanRow, err)
		}
		reservation.CreationTimestamp = time.UnixMilli(createdMs)
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// SaveReservations заменяет все бронирования
func (s *Store) SaveReservations(ctx context.Context, reservations []domain.Reservation) error {
	insert, args, err := buildInsertReservations(reservations)
	if err != nil {
		return err
	}
	return s.replaceAll(ctx, tableReservations, insert, args)
}

// replaceAll очищает таблицу и вставляет новые строки в одной транзакции
// Пустой insert означает пустую коллекцию
func (s *Store) replaceAll(ctx context.Context, table string, insert string, args []interface{}) error {
	deleteQuery, _, err := psqlbuilder.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAll %s - build delete query: %v", ErrBuildQuery, table, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: replaceAll %s - begin: %v", ErrTransaction, table, err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: replaceAll %s - execute delete: %v", ErrExecQuery, table, err)
	}

	if insert != "" {
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: replaceAll %s - execute insert: %v", ErrExecQuery, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: replaceAll %s - commit: %v", ErrTransaction, table, err)
	}

	return nil
}

func buildInsertSchedules(shifts []domain.Shift) (string, []interface{}, error) {
	if len(shifts) == 0 {
		return "", nil, nil
	}

	builder := psqlbuilder.Insert(tableSchedules).
		Columns("position", "provider_id", "date", "start_time", "end_time")
	for i, shift := range shifts {
		builder = builder.Values(i, shift.ProviderID, shift.Date, shift.StartTime, shift.EndTime)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: SaveSchedules - build insert query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func buildInsertReservations(reservations []domain.Reservation) (string, []interface{}, error) {
	if len(reservations) == 0 {
		return "", nil, nil
	}

	builder := psqlbuilder.Insert(tableReservations).
		Columns(
			"position",
			"date",
			"time",
			"client_id",
			"provider_id",
			"confirmed",
			"creation_timestamp",
		)
	for i, r := range reservations {
		builder = builder.Values(
			i,
			r.Date,
			r.Time,
			r.ClientID,
			r.ProviderID,
			r.Confirmed,
			r.CreationTimestamp.UnixMilli(),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: SaveReservations - build insert query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}
