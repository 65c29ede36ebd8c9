package models

import "time"

// Story is ephemeral-style content owned by a user. SharedPostID links a
// story created from a post; the source post keeps no link back, and the
// reference is nulled if the post is deleted.
type Story struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index"`
	User         User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	SharedPostID *uint     `json:"shared_post_id"`
	SharedPost   *Post     `json:"-" gorm:"foreignKey:SharedPostID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoryView marks a story as viewed by a user, at most once per pair.
type StoryView struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	StoryID  uint      `json:"story_id" gorm:"index;uniqueIndex:idx_story_user_view"`
	UserID   uint      `json:"user_id" gorm:"index;uniqueIndex:idx_story_user_view"`
	Story    Story     `json:"-" gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE"`
	User     User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ViewedAt time.Time `json:"viewed_at" gorm:"autoCreateTime"`
}

// StoryViewer is the projection returned by the story viewers listing.
type StoryViewer struct {
	Username string    `json:"username"`
	ViewedAt time.Time `json:"viewed_at"`
}
