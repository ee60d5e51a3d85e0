package repositories

import (
	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) CreateComment(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create comment")
	}
	return nil
}

func (r *CommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.Preload("Author").First(&comment, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "comment not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get comment")
	}

	return &comment, nil
}

func (r *CommentRepository) SaveComment(comment *models.Comment) error {
	if err := r.db.Omit(clause.Associations).Save(comment).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to save comment")
	}
	return nil
}

func (r *CommentRepository) DeleteComment(comment *models.Comment) error {
	if err := r.db.Delete(comment).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to delete comment")
	}
	return nil
}
