package services

import (
	"fmt"

	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/pkg/errors"
	"github.com/chirp-social/chirp/pkg/pagination"
)

// FeedPostStore is the slice of the post repository the feed depends on.
type FeedPostStore interface {
	ListPostsByAuthor(authorID uint, params pagination.QueryParams) ([]models.Post, int64, error)
	ListPostsByAuthors(authorIDs []uint, excludeAuthorID uint, params pagination.QueryParams) ([]models.Post, int64, error)
}

// FriendGraph is the slice of the friendship repository the feed depends
// on.
type FriendGraph interface {
	AreFriends(a, b uint) (bool, error)
	ListFriends(userID uint) ([]models.User, error)
}

type FeedService struct {
	posts       FeedPostStore
	friendships FriendGraph
	users       UserDirectory
}

func NewFeedService(posts FeedPostStore, friendships FriendGraph, users UserDirectory) *FeedService {
	return &FeedService{
		posts:       posts,
		friendships: friendships,
		users:       users,
	}
}

// fallbackAuthor names the synthetic posts shown on an empty feed.
const fallbackAuthor = "System"

const fallbackFeedSize = 5

// GetPostsByUser returns one page of the named user's posts, newest
// first. Callers may only view their own posts or those of a confirmed
// friend.
func (s *FeedService) GetPostsByUser(callerID uint, username string, params pagination.QueryParams) (pagination.PagedResult[PostView], error) {
	params = params.Normalize()

	target, err := s.users.GetUserByUsername(username)
	if err != nil {
		return pagination.PagedResult[PostView]{}, err
	}

	if callerID != target.ID {
		areFriends, err := s.friendships.AreFriends(callerID, target.ID)
		if err != nil {
			return pagination.PagedResult[PostView]{}, err
		}
		if !areFriends {
			return pagination.PagedResult[PostView]{}, errors.New(errors.ErrCodeForbidden, "you can only view posts of your friends")
		}
	}

	posts, totalCount, err := s.posts.ListPostsByAuthor(target.ID, params)
	if err != nil {
		return pagination.PagedResult[PostView]{}, err
	}

	return pagination.NewPagedResult(postViews(posts), totalCount, params), nil
}

// GetFriendFeed returns one page of posts authored by userID's confirmed
// friends, newest first, never including the user's own posts. An empty
// feed yields the fixed set of synthetic posts instead of an error.
func (s *FeedService) GetFriendFeed(userID uint, params pagination.QueryParams) (pagination.PagedResult[PostView], error) {
	params = params.Normalize()

	friends, err := s.friendships.ListFriends(userID)
	if err != nil {
		return pagination.PagedResult[PostView]{}, err
	}

	friendIDs := make([]uint, 0, len(friends))
	for i := range friends {
		friendIDs = append(friendIDs, friends[i].ID)
	}

	var posts []models.Post
	var totalCount int64
	if len(friendIDs) > 0 {
		posts, totalCount, err = s.posts.ListPostsByAuthors(friendIDs, userID, params)
		if err != nil {
			return pagination.PagedResult[PostView]{}, err
		}
	}

	if totalCount == 0 {
		return fallbackFeed(), nil
	}

	return pagination.NewPagedResult(postViews(posts), totalCount, params), nil
}

// fallbackFeed is the placeholder page served while a user has no
// friend posts to show: five synthetic posts with ids -1..-5 that never
// exist as rows.
func fallbackFeed() pagination.PagedResult[PostView] {
	items := make([]PostView, 0, fallbackFeedSize)
	for i := 1; i <= fallbackFeedSize; i++ {
		items = append(items, PostView{
			ID:       int64(-i),
			Author:   fallbackAuthor,
			Content:  fmt.Sprintf("Default post %d", i),
			Comments: []CommentView{},
		})
	}

	return pagination.PagedResult[PostView]{
		Items:      items,
		TotalCount: fallbackFeedSize,
		Page:       1,
		PageSize:   fallbackFeedSize,
		TotalPages: 1,
	}
}

func postViews(posts []models.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, newPostView(&posts[i]))
	}
	return views
}
