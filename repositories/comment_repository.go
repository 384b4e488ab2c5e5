package repositories

import (
	"gorm.io/gorm"

	"title-review-api/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(reviewID, commentID uint) (*models.Comment, error)
	GetList(reviewID uint, params models.ListParams) ([]models.Comment, int64, error)
	Update(comment *models.Comment) error
	Delete(comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(reviewID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("review_id = ? AND id = ?", reviewID, commentID).
		Preload("Author").
		First(&comment).Error
	return &comment, err
}

func (r *commentRepository) GetList(reviewID uint, params models.ListParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	query := r.db.Model(&models.Comment{}).Where("review_id = ?", reviewID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Preload("Author").
		Order("pub_date").
		Offset(offset).
		Limit(params.Limit).
		Find(&comments).Error
	return comments, total, err
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}
