package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestIdentityRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewIdentityRepository(db, TableAdmins)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_hash", "created_at", "updated_at"}).
		AddRow("a1", "Asha", "Verma", "asha@example.edu", "hash", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM admins WHERE email = $1 LIMIT 1")).
		WithArgs("asha@example.edu").
		WillReturnRows(rows)

	identity, err := repo.FindByEmail(context.Background(), "asha@example.edu")
	require.NoError(t, err)
	assert.Equal(t, "a1", identity.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityRepositoryFindByEmailNoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewIdentityRepository(db, TableFacultyAccounts)

	mock.ExpectQuery("SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM faculty_accounts").
		WithArgs("nobody@example.edu").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.edu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestIdentityRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewIdentityRepository(db, TableAdmins)

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), "Asha", "Verma", "asha@example.edu", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	identity := &models.Identity{
		FirstName:    "Asha",
		LastName:     "Verma",
		Email:        "asha@example.edu",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateIdentity(context.Background(), identity))
	assert.NotEmpty(t, identity.ID)
	assert.False(t, identity.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityRepositoryCreateUniqueViolation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewIdentityRepository(db, TableAdmins)

	mock.ExpectExec("INSERT INTO admins").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateIdentity(context.Background(), &models.Identity{Email: "dup@example.edu"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestIdentityRepositoryUpdateProfileAndPassword(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewIdentityRepository(db, TableFacultyAccounts)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE faculty_accounts SET first_name = $2, last_name = $3, updated_at = $4 WHERE id = $1")).
		WithArgs("f1", "Ravi", "Kumar", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateProfile(context.Background(), "f1", "Ravi", "Kumar"))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE faculty_accounts SET password_hash = $2, updated_at = $3 WHERE id = $1")).
		WithArgs("f1", "newhash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePassword(context.Background(), "f1", "newhash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}
