package repositories

import (
	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/pkg/errors"
	"gorm.io/gorm"
)

type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// pairCondition scopes a query to the unordered pair {a,b}. The row is
// directional while pending, so every read must check both orderings;
// this is the single place that knows that.
func pairCondition(db *gorm.DB, a, b uint) *gorm.DB {
	return db.Where(
		"(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
		a, b, b, a,
	)
}

// FindForPair returns the friendship row for the unordered pair, or nil
// when no row exists.
func (r *FriendshipRepository) FindForPair(a, b uint) (*models.Friendship, error) {
	var friendship models.Friendship
	result := pairCondition(r.db.Model(&models.Friendship{}), a, b).First(&friendship)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to look up friendship")
	}

	return &friendship, nil
}

// CreateRequest inserts a new unconfirmed edge from requester to recipient.
func (r *FriendshipRepository) CreateRequest(requesterID, recipientID uint) (*models.Friendship, error) {
	friendship := &models.Friendship{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Confirmed:   false,
	}

	if err := r.db.Create(friendship).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create friend request")
	}

	return friendship, nil
}

// AcceptRequest confirms the pending request from requester to recipient.
// Acceptance is directional: only the row keyed exactly
// (requester_id, recipient_id, confirmed=false) qualifies. The row is
// loaded and saved inside one transaction so the model hooks run against
// the populated row, not a zero value.
func (r *FriendshipRepository) AcceptRequest(recipientID, requesterID uint) (*models.Friendship, error) {
	var friendship models.Friendship

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("requester_id = ? AND recipient_id = ? AND confirmed = ?", requesterID, recipientID, false).
			First(&friendship)

		if result.Error == gorm.ErrRecordNotFound {
			return errors.New(errors.ErrCodeNoPendingRequest, "no pending request from this user")
		}
		if result.Error != nil {
			return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to accept friend request")
		}

		friendship.Confirmed = true
		return tx.Save(&friendship).Error
	})
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to accept friend request")
	}

	return &friendship, nil
}

// RejectRequest deletes the pending request from requester to recipient.
func (r *FriendshipRepository) RejectRequest(recipientID, requesterID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("requester_id = ? AND recipient_id = ? AND confirmed = ?", requesterID, recipientID, false).
			Delete(&models.Friendship{})

		if result.Error != nil {
			return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to reject friend request")
		}
		if result.RowsAffected == 0 {
			return errors.New(errors.ErrCodeNoPendingRequest, "no pending request from this user")
		}

		return nil
	})
}

// AreFriends reports whether a confirmed row exists for the unordered pair.
func (r *FriendshipRepository) AreFriends(a, b uint) (bool, error) {
	var count int64
	result := pairCondition(r.db.Model(&models.Friendship{}), a, b).
		Where("confirmed = ?", true).
		Count(&count)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check friendship")
	}

	return count > 0, nil
}

// IsRequested reports whether any row, confirmed or not, exists for the
// unordered pair.
func (r *FriendshipRepository) IsRequested(a, b uint) (bool, error) {
	var count int64
	result := pairCondition(r.db.Model(&models.Friendship{}), a, b).Count(&count)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check friend request")
	}

	return count > 0, nil
}

// ListFriends returns every user connected to userID by a confirmed row,
// resolving the other side of the pair regardless of request direction.
func (r *FriendshipRepository) ListFriends(userID uint) ([]models.User, error) {
	var friends []models.User

	err := r.db.Table("users").
		Select("users.*").
		Joins("JOIN friendships ON (friendships.requester_id = users.id OR friendships.recipient_id = users.id)").
		Where("(friendships.requester_id = ? OR friendships.recipient_id = ?) AND friendships.confirmed = ? AND users.id != ?",
			userID, userID, true, userID).
		Find(&friends).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list friends")
	}

	return friends, nil
}

// ListPendingIncoming returns unconfirmed rows addressed to userID, with
// the requesting user loaded.
func (r *FriendshipRepository) ListPendingIncoming(userID uint) ([]models.Friendship, error) {
	var requests []models.Friendship

	err := r.db.Where("recipient_id = ? AND confirmed = ?", userID, false).
		Preload("Requester").
		Find(&requests).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list pending requests")
	}

	return requests, nil
}
