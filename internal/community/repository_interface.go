package community

import "context"

type Repository interface {
	ListMembers(ctx context.Context) ([]Member, error)
	ListFollowing(ctx context.Context, followerEmail string) ([]string, error)
	Follow(ctx context.Context, followerEmail, followingEmail string) (*Follow, error)
	Unfollow(ctx context.Context, followerEmail, followingEmail string) error
}
