package services

import (
	"sort"
	"time"

	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/pkg/errors"
	"github.com/chirp-social/chirp/pkg/pagination"
)

// In-memory stand-ins for the repositories. They reproduce the store
// semantics the services rely on: directional pending rows with
// both-orderings lookup, unique likes per (post, user), newest-first
// ordering and offset/limit pagination.

type fakeUserDirectory struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserDirectory() *fakeUserDirectory {
	return &fakeUserDirectory{users: make(map[uint]*models.User)}
}

func (f *fakeUserDirectory) addUser(username, email string) *models.User {
	f.nextID++
	user := &models.User{
		ID:       f.nextID,
		Username: username,
		Email:    email,
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserDirectory) GetUserByID(id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "user not found")
}

func (f *fakeUserDirectory) GetUserByUsername(username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "user not found")
}

func (f *fakeUserDirectory) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "user not found")
}

func (f *fakeUserDirectory) CreateUser(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserDirectory) UsernameOrEmailTaken(username, email string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeFriendshipStore struct {
	users  *fakeUserDirectory
	rows   []*models.Friendship
	nextID uint
}

func newFakeFriendshipStore(users *fakeUserDirectory) *fakeFriendshipStore {
	return &fakeFriendshipStore{users: users}
}

func (f *fakeFriendshipStore) findPair(a, b uint) *models.Friendship {
	for _, row := range f.rows {
		if (row.RequesterID == a && row.RecipientID == b) ||
			(row.RequesterID == b && row.RecipientID == a) {
			return row
		}
	}
	return nil
}

func (f *fakeFriendshipStore) FindForPair(a, b uint) (*models.Friendship, error) {
	if row := f.findPair(a, b); row != nil {
		copied := *row
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeFriendshipStore) CreateRequest(requesterID, recipientID uint) (*models.Friendship, error) {
	f.nextID++
	row := &models.Friendship{
		ID:          f.nextID,
		RequesterID: requesterID,
		RecipientID: recipientID,
		Confirmed:   false,
		CreatedAt:   time.Now(),
	}
	f.rows = append(f.rows, row)
	copied := *row
	return &copied, nil
}

func (f *fakeFriendshipStore) AcceptRequest(recipientID, requesterID uint) (*models.Friendship, error) {
	for _, row := range f.rows {
		if row.RequesterID == requesterID && row.RecipientID == recipientID && !row.Confirmed {
			row.Confirmed = true
			copied := *row
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNoPendingRequest, "no pending request from this user")
}

func (f *fakeFriendshipStore) RejectRequest(recipientID, requesterID uint) error {
	for i, row := range f.rows {
		if row.RequesterID == requesterID && row.RecipientID == recipientID && !row.Confirmed {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeNoPendingRequest, "no pending request from this user")
}

func (f *fakeFriendshipStore) AreFriends(a, b uint) (bool, error) {
	row := f.findPair(a, b)
	return row != nil && row.Confirmed, nil
}

func (f *fakeFriendshipStore) IsRequested(a, b uint) (bool, error) {
	return f.findPair(a, b) != nil, nil
}

func (f *fakeFriendshipStore) ListFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	for _, row := range f.rows {
		if !row.Confirmed {
			continue
		}
		var otherID uint
		switch userID {
		case row.RequesterID:
			otherID = row.RecipientID
		case row.RecipientID:
			otherID = row.RequesterID
		default:
			continue
		}
		if other, ok := f.users.users[otherID]; ok {
			friends = append(friends, *other)
		}
	}
	return friends, nil
}

func (f *fakeFriendshipStore) ListPendingIncoming(userID uint) ([]models.Friendship, error) {
	var requests []models.Friendship
	for _, row := range f.rows {
		if row.RecipientID == userID && !row.Confirmed {
			copied := *row
			if requester, ok := f.users.users[row.RequesterID]; ok {
				copied.Requester = *requester
			}
			requests = append(requests, copied)
		}
	}
	return requests, nil
}

type likeKey struct {
	postID uint
	userID uint
}

type fakePostStore struct {
	users  *fakeUserDirectory
	posts  map[uint]*models.Post
	likes  map[likeKey]bool
	nextID uint
}

func newFakePostStore(users *fakeUserDirectory) *fakePostStore {
	return &fakePostStore{
		users: users,
		posts: make(map[uint]*models.Post),
		likes: make(map[likeKey]bool),
	}
}

func (f *fakePostStore) addPost(authorID uint, content string, createdAt time.Time) *models.Post {
	f.nextID++
	post := &models.Post{
		ID:        f.nextID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: createdAt,
	}
	f.posts[post.ID] = post
	return post
}

func (f *fakePostStore) CreatePost(post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

// loaded returns a copy with author, comments and likes filled in, the
// way the real repository preloads them.
func (f *fakePostStore) loaded(post *models.Post) models.Post {
	copied := *post
	if author, ok := f.users.users[post.AuthorID]; ok {
		copied.Author = *author
	}
	copied.Likes = nil
	for key := range f.likes {
		if key.postID == post.ID {
			copied.Likes = append(copied.Likes, models.Like{PostID: key.postID, AuthorID: key.userID})
		}
	}
	return copied
}

func (f *fakePostStore) GetPostByID(id uint) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "post not found")
	}
	loaded := f.loaded(post)
	return &loaded, nil
}

func (f *fakePostStore) SavePost(post *models.Post) error {
	stored, ok := f.posts[post.ID]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "post not found")
	}
	stored.Content = post.Content
	return nil
}

func (f *fakePostStore) DeletePost(post *models.Post) error {
	delete(f.posts, post.ID)
	for key := range f.likes {
		if key.postID == post.ID {
			delete(f.likes, key)
		}
	}
	return nil
}

func (f *fakePostStore) ToggleLike(postID, userID uint) (bool, int64, error) {
	key := likeKey{postID: postID, userID: userID}
	liked := !f.likes[key]
	if liked {
		f.likes[key] = true
	} else {
		delete(f.likes, key)
	}

	var total int64
	for k := range f.likes {
		if k.postID == postID {
			total++
		}
	}
	return liked, total, nil
}

func (f *fakePostStore) list(match func(*models.Post) bool, params pagination.QueryParams) ([]models.Post, int64, error) {
	var matched []models.Post
	for _, post := range f.posts {
		if match(post) {
			matched = append(matched, f.loaded(post))
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	totalCount := int64(len(matched))
	start := params.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], totalCount, nil
}

func (f *fakePostStore) ListPostsByAuthor(authorID uint, params pagination.QueryParams) ([]models.Post, int64, error) {
	return f.list(func(p *models.Post) bool {
		return p.AuthorID == authorID
	}, params)
}

func (f *fakePostStore) ListPostsByAuthors(authorIDs []uint, excludeAuthorID uint, params pagination.QueryParams) ([]models.Post, int64, error) {
	allowed := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	return f.list(func(p *models.Post) bool {
		return allowed[p.AuthorID] && p.AuthorID != excludeAuthorID
	}, params)
}

type fakeCommentStore struct {
	users    *fakeUserDirectory
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentStore(users *fakeUserDirectory) *fakeCommentStore {
	return &fakeCommentStore{users: users, comments: make(map[uint]*models.Comment)}
}

func (f *fakeCommentStore) CreateComment(comment *models.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentStore) GetCommentByID(id uint) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "comment not found")
	}
	copied := *comment
	if author, ok := f.users.users[comment.AuthorID]; ok {
		copied.Author = *author
	}
	return &copied, nil
}

func (f *fakeCommentStore) SaveComment(comment *models.Comment) error {
	stored, ok := f.comments[comment.ID]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "comment not found")
	}
	stored.Content = comment.Content
	return nil
}

func (f *fakeCommentStore) DeleteComment(comment *models.Comment) error {
	delete(f.comments, comment.ID)
	return nil
}
