package models

import "time"

// Favorite is a (user, post) pair with toggle semantics, a private bookmark.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_favorite"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_favorite"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post      Post      `json:"post" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
