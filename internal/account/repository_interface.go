package account

import "context"

type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, req SignUpRequest, passwordHash string) (*Account, error)
	FindLatestByEmail(ctx context.Context, email string) (*Account, error)
	FindCredentials(ctx context.Context, email string) (*Credentials, error)
}
