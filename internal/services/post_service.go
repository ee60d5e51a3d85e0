package services

import (
	"unicode/utf8"

	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/internal/security"
	"github.com/chirp-social/chirp/pkg/errors"
)

// PostStore is the slice of the post repository the service depends on.
type PostStore interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	SavePost(post *models.Post) error
	DeletePost(post *models.Post) error
	ToggleLike(postID, userID uint) (bool, int64, error)
}

// CommentStore is the slice of the comment repository the service
// depends on.
type CommentStore interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	SaveComment(comment *models.Comment) error
	DeleteComment(comment *models.Comment) error
}

// FriendChecker answers the are-friends predicate; implemented by the
// friendship repository.
type FriendChecker interface {
	AreFriends(a, b uint) (bool, error)
}

type PostService struct {
	posts       PostStore
	comments    CommentStore
	friendships FriendChecker
	users       UserDirectory
}

func NewPostService(posts PostStore, comments CommentStore, friendships FriendChecker, users UserDirectory) *PostService {
	return &PostService{
		posts:       posts,
		comments:    comments,
		friendships: friendships,
		users:       users,
	}
}

// prepareContent sanitizes a post or comment body and enforces the
// length bounds at the core boundary, independent of request validation.
func prepareContent(content string) (string, error) {
	content = security.SanitizeContent(content)
	if len(content) == 0 {
		return "", errors.New(errors.ErrCodeValidation, "content must not be empty")
	}
	// The bound counts characters, not bytes, so multibyte text gets the
	// full 280.
	if utf8.RuneCountInString(content) > models.MaxContentLength {
		return "", errors.New(errors.ErrCodeValidation, "content exceeds 280 characters")
	}
	return content, nil
}

// CreatePost stores a new post by authorID; the store assigns id and
// creation time.
func (s *PostService) CreatePost(authorID uint, content string) (*PostView, error) {
	content, err := prepareContent(content)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, err
	}

	// Reload so the view carries the author and empty collections.
	full, err := s.posts.GetPostByID(post.ID)
	if err != nil {
		return nil, err
	}

	view := newPostView(full)
	return &view, nil
}

// EditPost updates a post's content. Only the author may edit.
func (s *PostService) EditPost(userID, postID uint, content string) (*PostView, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, errors.New(errors.ErrCodeForbidden, "only the author can edit a post")
	}

	content, err = prepareContent(content)
	if err != nil {
		return nil, err
	}

	post.Content = content
	if err := s.posts.SavePost(post); err != nil {
		return nil, err
	}

	view := newPostView(post)
	return &view, nil
}

// DeletePost removes a post and, with it, its comments and likes. Only
// the author may delete.
func (s *PostService) DeletePost(userID, postID uint) error {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return errors.New(errors.ErrCodeForbidden, "only the author can delete a post")
	}

	return s.posts.DeletePost(post)
}

// GetPost returns a single post with comments and like count.
func (s *PostService) GetPost(postID uint) (*PostView, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	view := newPostView(post)
	return &view, nil
}

// ToggleLike flips userID's like on a post. A second call from the same
// state returns the post to its original like count. Liking requires a
// confirmed friendship with the post's author.
func (s *PostService) ToggleLike(userID, postID uint) (*LikeResult, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	areFriends, err := s.friendships.AreFriends(userID, post.AuthorID)
	if err != nil {
		return nil, err
	}
	if !areFriends {
		return nil, errors.New(errors.ErrCodeForbidden, "you can only like posts of your friends")
	}

	liked, total, err := s.posts.ToggleLike(postID, userID)
	if err != nil {
		return nil, err
	}

	return &LikeResult{Liked: liked, TotalLikes: total}, nil
}

// AddComment attaches a comment by userID to an existing post.
func (s *PostService) AddComment(userID, postID uint, content string) (*CommentView, error) {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		return nil, err
	}

	content, err := prepareContent(content)
	if err != nil {
		return nil, err
	}

	author, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: userID,
		Content:  content,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}

	comment.Author = *author
	view := newCommentView(comment)
	return &view, nil
}

// EditComment updates a comment's content. Only the author may edit.
func (s *PostService) EditComment(userID, commentID uint, content string) (*CommentView, error) {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != userID {
		return nil, errors.New(errors.ErrCodeForbidden, "only the author can edit a comment")
	}

	content, err = prepareContent(content)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.SaveComment(comment); err != nil {
		return nil, err
	}

	view := newCommentView(comment)
	return &view, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *PostService) DeleteComment(userID, commentID uint) error {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != userID {
		return errors.New(errors.ErrCodeForbidden, "only the author can delete a comment")
	}

	return s.comments.DeleteComment(comment)
}
