package community

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this member")
	ErrNotFollowing     = errors.New("not following this member")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ListMembers returns one entry per email, newest registration winning.
func (r *repository) ListMembers(ctx context.Context) ([]Member, error) {
	var members []Member
	err := r.db.SelectContext(ctx, &members, `
		SELECT DISTINCT ON (LOWER(email)) id, full_name, email, program, created_at
		FROM registrations
		ORDER BY LOWER(email), created_at DESC`)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) ListFollowing(ctx context.Context, followerEmail string) ([]string, error) {
	var emails []string
	err := r.db.SelectContext(ctx, &emails, `
		SELECT following_email
		FROM follows
		WHERE follower_email = $1
		ORDER BY created_at DESC`, followerEmail)
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *repository) Follow(ctx context.Context, followerEmail, followingEmail string) (*Follow, error) {
	if strings.EqualFold(followerEmail, followingEmail) {
		return nil, ErrSelfFollow
	}

	res, err := r.db.QueryxContext(ctx, `
		INSERT INTO follows (follower_email, following_email)
		VALUES ($1, LOWER($2))
		ON CONFLICT (follower_email, following_email) DO NOTHING
		RETURNING id, follower_email, following_email, created_at`,
		followerEmail, followingEmail)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if !res.Next() {
		return nil, ErrAlreadyFollowing
	}

	var follow Follow
	if err := res.StructScan(&follow); err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *repository) Unfollow(ctx context.Context, followerEmail, followingEmail string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM follows
		WHERE follower_email = $1 AND following_email = LOWER($2)`,
		followerEmail, followingEmail)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFollowing
	}
	return nil
}
