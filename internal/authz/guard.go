// Package authz holds the stateless permission predicates applied before
// scoped reads and mutations.
package authz

import "github.com/onielsteve2003/Modern-social-media/internal/models"

// Authority is the set of user IDs permitted to perform a mutation.
type Authority map[uint]bool

// Allows reports whether callerID is in the authority set.
func (a Authority) Allows(callerID uint) bool {
	return a[callerID]
}

// PostAuthority resolves who may edit or delete a post: its owner only.
func PostAuthority(post *models.Post) Authority {
	return Authority{post.UserID: true}
}

// CommentEditAuthority resolves who may edit a comment: its author only.
func CommentEditAuthority(comment *models.Comment) Authority {
	return Authority{comment.UserID: true}
}

// CommentDeleteAuthority resolves who may delete a comment: its author, and
// the owner of the post it is attached to. The two are exposed as separate
// endpoints but share this single authority definition.
func CommentDeleteAuthority(comment *models.Comment, post *models.Post) Authority {
	return Authority{
		comment.UserID: true,
		post.UserID:    true,
	}
}

// IsOwner reports whether callerID owns the entity with ownerID.
func IsOwner(ownerID, callerID uint) bool {
	return ownerID == callerID
}
