package models

import "time"

// Post is user-owned content. Title, description and image are all optional
// but at least one must be present; HasContent enforces that.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string    `json:"title" gorm:"size:255"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasContent reports whether at least one of title, description or image is set.
func (p *Post) HasContent() bool {
	return p.Title != "" || p.Description != "" || p.Image != ""
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// SharePostRequest defines the request body for resharing a post to the
// caller's timeline or into a story.
type SharePostRequest struct {
	PostID uint `json:"post_id"`
}
