package models

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	PostID    uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null;index"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Content   string    `gorm:"type:varchar(280);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (c *Comment) BeforeSave(tx *gorm.DB) error {
	if len(c.Content) == 0 || utf8.RuneCountInString(c.Content) > MaxContentLength {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Comment) TableName() string {
	return "comments"
}
