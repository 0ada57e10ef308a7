package enrollment

import "context"

type Repository interface {
	Insert(ctx context.Context, in RegisterInput, passwordHash *string) (*Registration, error)
	ListByEmail(ctx context.Context, email string) ([]Registration, error)
	HasRegistration(ctx context.Context, email, program string) (bool, error)
}
