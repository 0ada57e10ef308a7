package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrAccountNotFound = errors.New("account not found")

const accountColumns = "id, full_name, email, phone_number, program, created_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM registrations WHERE LOWER(email) = LOWER($1))", email)
	return exists, err
}

// Create writes the sign-up registration row. Members arriving from a
// course page carry that program; everyone else becomes a general member.
func (r *repository) Create(ctx context.Context, req SignUpRequest, passwordHash string) (*Account, error) {
	program := req.Program
	message := "Self-registered via Sign Up page"
	if program == "" {
		program = "General Member"
	} else {
		message = "Registered specifically for: " + program
	}

	var acc Account
	err := r.db.GetContext(ctx, &acc, `
		INSERT INTO registrations (full_name, email, phone_number, password_hash, program, preferred_date, message)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7)
		RETURNING `+accountColumns,
		req.FullName, strings.TrimSpace(req.Email), req.PhoneNumber, passwordHash,
		program, time.Now().Format(time.RFC3339), message,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// FindLatestByEmail returns the newest registration row for the email, the
// one whose details win for profile display.
func (r *repository) FindLatestByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	err := r.db.GetContext(ctx, &acc, `
		SELECT `+accountColumns+`
		FROM registrations
		WHERE LOWER(email) = LOWER($1)
		ORDER BY created_at DESC
		LIMIT 1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// FindCredentials returns the newest row that actually stores a password
// hash. Enrollment rows without a password never authenticate.
func (r *repository) FindCredentials(ctx context.Context, email string) (*Credentials, error) {
	var creds Credentials
	err := r.db.GetContext(ctx, &creds, `
		SELECT `+accountColumns+`, password_hash
		FROM registrations
		WHERE LOWER(email) = LOWER($1) AND password_hash IS NOT NULL
		ORDER BY created_at DESC
		LIMIT 1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &creds, nil
}
