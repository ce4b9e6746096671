// Package store is the durable key-value collaborator the session and
// ledger records are mirrored into.
package store

import "context"

// Storage keys. The user record and each per-user post list live under
// their own key; LastPostsKey is the bootstrap copy consulted before a
// user id is known.
const (
	UserKey      = "session.user"
	LastPostsKey = "session.lastPosts"

	postsKeyPrefix = "session.posts."
)

// PostsKey returns the key holding the post list owned by one user.
func PostsKey(userID string) string {
	return postsKeyPrefix + userID
}

// Store is a flat string KV. Get reports a missing key through the second
// return value, never as an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
