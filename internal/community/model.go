package community

import "time"

// Member is a deduplicated community listing entry: one row per email,
// newest registration wins. The password hash is never selected.
type Member struct {
	ID        int       `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Program   string    `db:"program" json:"program"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Follow struct {
	ID             int       `db:"id" json:"id"`
	FollowerEmail  string    `db:"follower_email" json:"follower_email"`
	FollowingEmail string    `db:"following_email" json:"following_email"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type FollowRequest struct {
	Email string `json:"email" binding:"required,email"`
}
