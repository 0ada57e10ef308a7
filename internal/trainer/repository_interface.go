package trainer

import "context"

type Repository interface {
	List(ctx context.Context) ([]Trainer, error)
	Create(ctx context.Context, req CreateTrainerRequest) (*Trainer, error)
	Delete(ctx context.Context, id int) error
}
