package trainer

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupTrainerMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestTrainerList(t *testing.T) {
	repo, mock, close := setupTrainerMock(t)
	defer close()

	mock.ExpectQuery("SELECT id, name, role, description, image_url, created_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "description", "image_url", "created_at"}).
			AddRow(1, "Visal Kong", "Head of Marketing", "10 years in media", "", time.Now()))

	trainers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trainers, 1)
	require.Equal(t, "Visal Kong", trainers[0].Name)
}

func TestTrainerCreate(t *testing.T) {
	repo, mock, close := setupTrainerMock(t)
	defer close()

	mock.ExpectQuery("INSERT INTO trainers").
		WithArgs("Visal Kong", "Head of Marketing", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "description", "image_url", "created_at"}).
			AddRow(1, "Visal Kong", "Head of Marketing", "", "", time.Now()))

	trainer, err := repo.Create(context.Background(), CreateTrainerRequest{
		Name: "Visal Kong",
		Role: "Head of Marketing",
	})
	require.NoError(t, err)
	require.Equal(t, 1, trainer.ID)
}

func TestTrainerDelete_NotFound(t *testing.T) {
	repo, mock, close := setupTrainerMock(t)
	defer close()

	mock.ExpectExec("DELETE FROM trainers").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	require.ErrorIs(t, err, ErrTrainerNotFound)
}
