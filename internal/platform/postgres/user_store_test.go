package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/postgres"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newSignupUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("alice", "alice@example.com", "password123")
	require.NoError(t, err)
	return user
}

func TestUserStoreCreate(t *testing.T) {
	t.Run("hashes the password and inserts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		userStore := postgres.NewUserStore(db, bcrypt.MinCost, nil)
		user := newSignupUser(t)

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(user.ID, user.Username, user.Email, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := userStore.Create(context.Background(), user)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())

		// The plaintext must be gone and the stored hash must verify.
		assert.Empty(t, user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(user.HashedPassword), []byte("password123")))
	})

	t.Run("maps a unique violation to ErrEmailExists", func(t *testing.T) {
		db, mock := setupMockDB(t)
		userStore := postgres.NewUserStore(db, bcrypt.MinCost, nil)
		user := newSignupUser(t)

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := userStore.Create(context.Background(), user)

		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an invalid user before touching the database", func(t *testing.T) {
		db, mock := setupMockDB(t)
		userStore := postgres.NewUserStore(db, bcrypt.MinCost, nil)

		user := &domain.User{ID: uuid.New(), Email: "alice@example.com", Password: "password123"}

		err := userStore.Create(context.Background(), user)

		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserStoreGetByEmail(t *testing.T) {
	t.Run("returns the stored user", func(t *testing.T) {
		db, mock := setupMockDB(t)
		userStore := postgres.NewUserStore(db, bcrypt.MinCost, nil)

		id := uuid.New()
		createdAt := time.Now().UTC()
		mock.ExpectQuery(`SELECT id, username, email, password, created_at FROM users WHERE email = \$1`).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "username", "email", "password", "created_at"}).
				AddRow(id.String(), "alice", "alice@example.com", "$2a$10$hash", createdAt))

		user, err := userStore.GetByEmail(context.Background(), "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "$2a$10$hash", user.HashedPassword)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email yields ErrUserNotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		userStore := postgres.NewUserStore(db, bcrypt.MinCost, nil)

		mock.ExpectQuery(`SELECT id, username, email, password, created_at FROM users WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := userStore.GetByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserStoreGetByID(t *testing.T) {
	t.Run("unknown ID yields ErrUserNotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		userStore := postgres.NewUserStore(db, bcrypt.MinCost, nil)

		id := uuid.New()
		mock.ExpectQuery(`SELECT id, username, email, password, created_at FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		user, err := userStore.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other database errors pass through", func(t *testing.T) {
		db, mock := setupMockDB(t)
		userStore := postgres.NewUserStore(db, bcrypt.MinCost, nil)

		id := uuid.New()
		mock.ExpectQuery(`SELECT id, username, email, password, created_at FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(errors.New("connection refused"))

		user, err := userStore.GetByID(context.Background(), id)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
