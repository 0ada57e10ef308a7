package enrollment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, in RegisterInput, passwordHash *string) (*Registration, error) {
	query := `
		INSERT INTO registrations (full_name, phone_number, telegram_username, email, password_hash, program, preferred_date, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, full_name, phone_number, telegram_username, email, password_hash, program, preferred_date, message, created_at
	`

	var reg Registration
	err := r.db.GetContext(ctx, &reg, query,
		in.FullName, in.PhoneNumber, in.TelegramUsername, in.Email,
		passwordHash, in.Program, in.PreferredDate, in.Message)
	if err != nil {
		return nil, err
	}

	return &reg, nil
}

func (r *repository) ListByEmail(ctx context.Context, email string) ([]Registration, error) {
	query := `
		SELECT id, full_name, phone_number, telegram_username, email, password_hash, program, preferred_date, message, created_at
		FROM registrations
		WHERE LOWER(email) = LOWER($1)
		ORDER BY created_at DESC
	`

	var regs []Registration
	err := r.db.SelectContext(ctx, &regs, query, email)
	if err != nil {
		return nil, err
	}

	return regs, nil
}

// HasRegistration reports whether a member already holds an enrollment row
// for a program label. Matching is case-insensitive, like the price map.
func (r *repository) HasRegistration(ctx context.Context, email, program string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM registrations
			WHERE LOWER(email) = LOWER($1) AND LOWER(program) = LOWER($2)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email, program)
	if err != nil {
		return false, err
	}

	return exists, nil
}
