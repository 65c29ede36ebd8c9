package models

import "time"

// Block is a directed blocker -> blocked edge, unique per ordered pair.
// Created and removed by the same toggle endpoint.
type Block struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlockerID uint      `json:"blocker_id" gorm:"index;uniqueIndex:idx_blocker_blocked"`
	BlockedID uint      `json:"blocked_id" gorm:"index;uniqueIndex:idx_blocker_blocked"`
	Blocker   User      `json:"-" gorm:"foreignKey:BlockerID;constraint:OnDelete:CASCADE"`
	Blocked   User      `json:"-" gorm:"foreignKey:BlockedID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
