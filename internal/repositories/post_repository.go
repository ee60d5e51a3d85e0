package repositories

import (
	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/pkg/errors"
	"github.com/chirp-social/chirp/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// postQuery loads a post with its author, comments (oldest first, with
// their authors) and likes. Related rows are pulled in explicitly; no
// call site relies on lazy loading.
func (r *PostRepository) postQuery() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes")
}

// CreatePost inserts a new post; the store assigns ID and CreatedAt.
func (r *PostRepository) CreatePost(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create post")
	}
	return nil
}

// GetPostByID retrieves a post with related rows included.
func (r *PostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	result := r.postQuery().First(&post, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "post not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get post")
	}

	return &post, nil
}

// SavePost persists content changes to an existing post. Associations
// preloaded on the struct are left untouched.
func (r *PostRepository) SavePost(post *models.Post) error {
	if err := r.db.Omit(clause.Associations).Save(post).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to save post")
	}
	return nil
}

// DeletePost removes a post together with its comments and likes.
func (r *PostRepository) DeletePost(post *models.Post) error {
	if err := r.db.Select(clause.Associations).Delete(post).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to delete post")
	}
	return nil
}

// ToggleLike inserts a like row for (postID, userID) if absent, deletes
// it if present, and returns the resulting state and total count. The
// whole sequence runs in one transaction; the unique index on
// (post_id, author_id) is the backstop against a concurrent double
// insert.
func (r *PostRepository) ToggleLike(postID, userID uint) (bool, int64, error) {
	var liked bool
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		result := tx.Where("post_id = ? AND author_id = ?", postID, userID).First(&existing)

		switch {
		case result.Error == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return errors.Wrap(err, errors.ErrCodeInternalError, "failed to remove like")
			}
			liked = false
		case result.Error == gorm.ErrRecordNotFound:
			like := &models.Like{PostID: postID, AuthorID: userID}
			if err := tx.Create(like).Error; err != nil {
				return errors.Wrap(err, errors.ErrCodeInternalError, "failed to add like")
			}
			liked = true
		default:
			return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to look up like")
		}

		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&total).Error
	})
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return false, 0, err
		}
		return false, 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to toggle like")
	}

	return liked, total, nil
}

// ListPostsByAuthor returns one page of a user's posts, newest first.
func (r *PostRepository) ListPostsByAuthor(authorID uint, params pagination.QueryParams) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).Where("author_id = ?", authorID)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count posts")
	}

	var posts []models.Post
	err := r.postQuery().
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list posts")
	}

	return posts, totalCount, nil
}

// ListPostsByAuthors returns one page of posts written by any of the
// given authors, newest first, never including posts by excludeAuthorID.
func (r *PostRepository) ListPostsByAuthors(authorIDs []uint, excludeAuthorID uint, params pagination.QueryParams) ([]models.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, 0, nil
	}

	query := r.db.Model(&models.Post{}).
		Where("author_id IN ? AND author_id != ?", authorIDs, excludeAuthorID)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count feed posts")
	}

	var posts []models.Post
	err := r.postQuery().
		Where("author_id IN ? AND author_id != ?", authorIDs, excludeAuthorID).
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list feed posts")
	}

	return posts, totalCount, nil
}
