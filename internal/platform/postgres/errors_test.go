package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-hq/taskboard-api/internal/platform/postgres"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantIs  error
		passRaw bool
	}{
		{"nil", nil, nil, false},
		{"no rows", sql.ErrNoRows, store.ErrNotFound, false},
		{"wrapped no rows", fmt.Errorf("query: %w", sql.ErrNoRows), store.ErrNotFound, false},
		{"unique violation", &pgconn.PgError{Code: "23505"}, store.ErrDuplicate, false},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "tasks_board_id_fkey"}, store.ErrInvalidEntity, false},
		{"not null violation", &pgconn.PgError{Code: "23502", ColumnName: "name"}, store.ErrInvalidEntity, false},
		{"unmapped error passes through", errors.New("connection refused"), nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := postgres.MapError(tc.err)

			if tc.err == nil {
				assert.NoError(t, got)
				return
			}
			if tc.passRaw {
				assert.Equal(t, tc.err, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantIs)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, postgres.IsUniqueViolation(
		fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	notFound := errors.New("entity not found")

	t.Run("rows touched", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, postgres.CheckRowsAffected(sqlmock.NewResult(0, 1), notFound))
	})

	t.Run("zero rows returns the sentinel", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, postgres.CheckRowsAffected(sqlmock.NewResult(0, 0), notFound), notFound)
	})

	t.Run("result errors surface", func(t *testing.T) {
		t.Parallel()
		result := sqlmock.NewErrorResult(errors.New("rows affected unsupported"))
		err := postgres.CheckRowsAffected(result, notFound)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, notFound)
	})
}
