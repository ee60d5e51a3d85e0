package models

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MaxContentLength caps post and comment bodies, counted in characters.
const MaxContentLength = 280

type Post struct {
	ID        uint      `gorm:"primaryKey"`
	AuthorID  uint      `gorm:"not null;index"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Content   string    `gorm:"type:varchar(280);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// BeforeSave enforces the content bounds even when the request-validation
// layer is bypassed.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if len(p.Content) == 0 || utf8.RuneCountInString(p.Content) > MaxContentLength {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Post) TableName() string {
	return "posts"
}
