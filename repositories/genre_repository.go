package repositories

import (
	"gorm.io/gorm"

	"title-review-api/models"
)

type GenreRepository interface {
	Create(genre *models.Genre) error
	GetBySlug(slug string) (*models.Genre, error)
	GetBySlugs(slugs []string) ([]models.Genre, error)
	GetList(params models.ListParams, search string) ([]models.Genre, int64, error)
	Delete(genre *models.Genre) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(genre *models.Genre) error {
	return r.db.Create(genre).Error
}

func (r *genreRepository) GetBySlug(slug string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.Where("slug = ?", slug).First(&genre).Error
	return &genre, err
}

func (r *genreRepository) GetBySlugs(slugs []string) ([]models.Genre, error) {
	var genres []models.Genre
	err := r.db.Where("slug IN ?", slugs).Find(&genres).Error
	return genres, err
}

func (r *genreRepository) GetList(params models.ListParams, search string) ([]models.Genre, int64, error) {
	var genres []models.Genre
	var total int64

	query := r.db.Model(&models.Genre{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("name").Offset(offset).Limit(params.Limit).Find(&genres).Error
	return genres, total, err
}

func (r *genreRepository) Delete(genre *models.Genre) error {
	return r.db.Delete(genre).Error
}
