package models

import (
	"time"

	"gorm.io/gorm"
)

// Friendship is a directed request edge that becomes an undirected
// friendship once Confirmed is set. At most one row exists per unordered
// user pair; the unique index blocks same-direction duplicates and the
// request path rejects the reverse ordering before insert.
type Friendship struct {
	ID          uint      `gorm:"primaryKey"`
	RequesterID uint      `gorm:"not null;index:idx_friendship_pair,unique"`
	Requester   User      `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	RecipientID uint      `gorm:"not null;index:idx_friendship_pair,unique"`
	Recipient   User      `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Confirmed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// BeforeSave rejects self-referencing edges at the store boundary so a
// caller bypassing the service layer still cannot friend themselves.
func (f *Friendship) BeforeSave(tx *gorm.DB) error {
	if f.RequesterID == f.RecipientID {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Friendship) TableName() string {
	return "friendships"
}
