package account

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupAccountMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupAccountMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM registrations WHERE LOWER(email) = LOWER($1))")).
		WithArgs("Member@Example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "Member@Example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestCreate_DefaultsToGeneralMember(t *testing.T) {
	repo, mock, close := setupAccountMock(t)
	defer close()

	mock.ExpectQuery("INSERT INTO registrations").
		WithArgs("Dara Chan", "dara@example.com", "+85512345678", "hashed", "General Member",
			sqlmock.AnyArg(), "Self-registered via Sign Up page").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "phone_number", "program", "created_at"}).
			AddRow(1, "Dara Chan", "dara@example.com", "+85512345678", "General Member", time.Now()))

	acc, err := repo.Create(context.Background(), SignUpRequest{
		FullName:    "Dara Chan",
		Email:       "dara@example.com",
		PhoneNumber: "+85512345678",
		Password:    "secret123",
	}, "hashed")
	require.NoError(t, err)
	require.Equal(t, "General Member", acc.Program)
}

func TestCreate_KeepsSelectedProgram(t *testing.T) {
	repo, mock, close := setupAccountMock(t)
	defer close()

	mock.ExpectQuery("INSERT INTO registrations").
		WithArgs("Dara Chan", "dara@example.com", "+85512345678", "hashed", "Marketing Fundamentals",
			sqlmock.AnyArg(), "Registered specifically for: Marketing Fundamentals").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "phone_number", "program", "created_at"}).
			AddRow(2, "Dara Chan", "dara@example.com", "+85512345678", "Marketing Fundamentals", time.Now()))

	acc, err := repo.Create(context.Background(), SignUpRequest{
		FullName:    "Dara Chan",
		Email:       "dara@example.com",
		PhoneNumber: "+85512345678",
		Password:    "secret123",
		Program:     "Marketing Fundamentals",
	}, "hashed")
	require.NoError(t, err)
	require.Equal(t, "Marketing Fundamentals", acc.Program)
}

func TestFindCredentials_NotFound(t *testing.T) {
	repo, mock, close := setupAccountMock(t)
	defer close()

	mock.ExpectQuery("SELECT id, full_name, email, phone_number, program, created_at, password_hash").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindCredentials(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFindLatestByEmail(t *testing.T) {
	repo, mock, close := setupAccountMock(t)
	defer close()

	mock.ExpectQuery("SELECT id, full_name, email, phone_number, program, created_at").
		WithArgs("dara@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "phone_number", "program", "created_at"}).
			AddRow(9, "Dara Chan", "dara@example.com", "+85512345678", "Online: Content Creation", time.Now()))

	acc, err := repo.FindLatestByEmail(context.Background(), "dara@example.com")
	require.NoError(t, err)
	require.Equal(t, 9, acc.ID)
	require.Equal(t, "Online: Content Creation", acc.Program)
}
