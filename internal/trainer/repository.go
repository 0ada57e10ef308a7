package trainer

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Trainer, error) {
	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, `
		SELECT id, name, role, description, image_url, created_at
		FROM trainers
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *repository) Create(ctx context.Context, req CreateTrainerRequest) (*Trainer, error) {
	var trainer Trainer
	err := r.db.GetContext(ctx, &trainer, `
		INSERT INTO trainers (name, role, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, role, description, image_url, created_at`,
		req.Name, req.Role, req.Description, req.ImageURL)
	if err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM trainers WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTrainerNotFound
	}
	return nil
}
