package services

import (
	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/pkg/errors"
)

// FriendshipStore is the slice of the friendship repository the service
// depends on.
type FriendshipStore interface {
	FindForPair(a, b uint) (*models.Friendship, error)
	CreateRequest(requesterID, recipientID uint) (*models.Friendship, error)
	AcceptRequest(recipientID, requesterID uint) (*models.Friendship, error)
	RejectRequest(recipientID, requesterID uint) error
	AreFriends(a, b uint) (bool, error)
	IsRequested(a, b uint) (bool, error)
	ListFriends(userID uint) ([]models.User, error)
	ListPendingIncoming(userID uint) ([]models.Friendship, error)
}

// UserDirectory resolves users; implemented by the user repository.
type UserDirectory interface {
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}

type FriendshipService struct {
	friendships FriendshipStore
	users       UserDirectory
}

func NewFriendshipService(friendships FriendshipStore, users UserDirectory) *FriendshipService {
	return &FriendshipService{
		friendships: friendships,
		users:       users,
	}
}

// RequestFriendship sends a friend request from requesterID to the named
// user. Requesting an already-confirmed friend is a no-op returning the
// existing relationship; a pending request in either direction fails
// with AlreadyRequested.
func (s *FriendshipService) RequestFriendship(requesterID uint, recipientUsername string) (*FriendshipView, error) {
	recipient, err := s.users.GetUserByUsername(recipientUsername)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.GetUserByID(requesterID)
	if err != nil {
		return nil, err
	}

	if requester.ID == recipient.ID {
		return nil, errors.New(errors.ErrCodeSelfReference, "you cannot add yourself as a friend")
	}

	existing, err := s.friendships.FindForPair(requester.ID, recipient.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Confirmed {
			view := newFriendshipView(requester, recipient, true)
			return &view, nil
		}
		return nil, errors.New(errors.ErrCodeAlreadyRequested, "friend request already sent")
	}

	if _, err := s.friendships.CreateRequest(requester.ID, recipient.ID); err != nil {
		return nil, err
	}

	view := newFriendshipView(requester, recipient, false)
	return &view, nil
}

// AcceptRequest confirms the pending request the named user sent to
// userID. Only the original recipient can accept.
func (s *FriendshipService) AcceptRequest(userID uint, requesterUsername string) (*FriendshipView, error) {
	requester, err := s.users.GetUserByUsername(requesterUsername)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.friendships.AcceptRequest(user.ID, requester.ID); err != nil {
		return nil, err
	}

	view := newFriendshipView(requester, user, true)
	return &view, nil
}

// RejectRequest removes the pending request the named user sent to userID.
func (s *FriendshipService) RejectRequest(userID uint, requesterUsername string) error {
	requester, err := s.users.GetUserByUsername(requesterUsername)
	if err != nil {
		return err
	}

	return s.friendships.RejectRequest(userID, requester.ID)
}

// AreFriends reports whether a confirmed friendship exists between the
// two users.
func (s *FriendshipService) AreFriends(a, b uint) (bool, error) {
	return s.friendships.AreFriends(a, b)
}

// IsRequested reports whether a request row exists between the two
// users, in either direction, confirmed or not.
func (s *FriendshipService) IsRequested(a, b uint) (bool, error) {
	return s.friendships.IsRequested(a, b)
}

// ListFriends returns every confirmed friend of userID.
func (s *FriendshipService) ListFriends(userID uint) ([]UserView, error) {
	friends, err := s.friendships.ListFriends(userID)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(friends))
	for i := range friends {
		views = append(views, newUserView(&friends[i]))
	}
	return views, nil
}

// ListPendingRequests returns the incoming, not yet answered requests of
// userID.
func (s *FriendshipService) ListPendingRequests(userID uint) ([]PendingRequestView, error) {
	requests, err := s.friendships.ListPendingIncoming(userID)
	if err != nil {
		return nil, err
	}

	views := make([]PendingRequestView, 0, len(requests))
	for i := range requests {
		views = append(views, PendingRequestView{
			Requester: requests[i].Requester.Username,
			Since:     requests[i].CreatedAt,
		})
	}
	return views, nil
}
