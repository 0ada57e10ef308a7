package account

import "time"

// Account is the identity view over a member's latest registration row.
// There is no separate users table: signing up writes a registration, and
// profile fields come from the newest row for the email.
type Account struct {
	ID          int       `db:"id" json:"id"`
	FullName    string    `db:"full_name" json:"full_name"`
	Email       string    `db:"email" json:"email"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	Program     string    `db:"program" json:"program"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	Role string `db:"-" json:"role"`
}

// Credentials carries the stored password hash alongside the account.
// Never serialized.
type Credentials struct {
	Account
	PasswordHash *string `db:"password_hash" json:"-"`
}

type SignUpRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Program     string `json:"program"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Account      Account `json:"account"`
}
