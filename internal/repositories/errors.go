package repositories

import "errors"

// Sentinel errors surfaced by repositories so handlers can map them onto
// HTTP statuses without string matching.
var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("follow relationship not found")
)
