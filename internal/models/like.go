package models

import (
	"time"
)

// Like rows are unique per (post, author); the composite index is the
// backstop for the toggle race under concurrent double-clicks.
type Like struct {
	ID        uint      `gorm:"primaryKey"`
	PostID    uint      `gorm:"not null;index:idx_post_like,unique"`
	AuthorID  uint      `gorm:"not null;index:idx_post_like,unique"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Like) TableName() string {
	return "likes"
}
