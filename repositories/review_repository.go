package repositories

import (
	"errors"

	"gorm.io/gorm"

	"title-review-api/models"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(titleID, reviewID uint) (*models.Review, error)
	GetList(titleID uint, params models.ListParams) ([]models.Review, int64, error)
	ExistsForAuthor(titleID, authorID uint) (bool, error)
	Update(review *models.Review) error
	Delete(review *models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(titleID, reviewID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("title_id = ? AND id = ?", titleID, reviewID).
		Preload("Author").
		First(&review).Error
	return &review, err
}

func (r *reviewRepository) GetList(titleID uint, params models.ListParams) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := r.db.Model(&models.Review{}).Where("title_id = ?", titleID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Preload("Author").
		Order("pub_date").
		Offset(offset).
		Limit(params.Limit).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) ExistsForAuthor(titleID, authorID uint) (bool, error) {
	var review models.Review
	err := r.db.Where("title_id = ? AND author_id = ?", titleID, authorID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(review *models.Review) error {
	return r.db.Delete(review).Error
}
