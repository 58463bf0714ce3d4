package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("reservations").Where(squirrel.Eq{"client_id": "c1", "confirmed": true}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM reservations WHERE client_id = $1 AND confirmed = $2", query)
	assert.Equal(t, []interface{}{"c1", true}, args)

	query, _, err = Delete("schedules").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM schedules", query)

	query, args, err = Insert("schedules").Columns("position", "provider_id").Values(0, "p1").Values(1, "p2").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO schedules (position,provider_id) VALUES ($1,$2),($3,$4)", query)
	assert.Equal(t, []interface{}{0, "p1", 1, "p2"}, args)
}
