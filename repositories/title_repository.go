package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"title-review-api/models"
)

type TitleRepository interface {
	Create(title *models.Title) error
	GetByID(id uint) (*models.Title, error)
	GetList(params models.TitleListParams) ([]models.Title, int64, error)
	Update(title *models.Title) error
	ReplaceGenres(title *models.Title, genres []models.Genre) error
	Delete(title *models.Title) error
}

const ratingSelect = "titles.*, " +
	"(SELECT CAST(ROUND(AVG(reviews.score)) AS INTEGER) " +
	"FROM reviews WHERE reviews.title_id = titles.id) AS rating"

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(title *models.Title) error {
	return r.db.Create(title).Error
}

func (r *titleRepository) GetByID(id uint) (*models.Title, error) {
	var title models.Title
	err := r.db.Select(ratingSelect).
		Preload("Category").
		Preload("Genres").
		First(&title, id).Error
	return &title, err
}

func (r *titleRepository) GetList(params models.TitleListParams) ([]models.Title, int64, error) {
	var titles []models.Title
	var total int64

	query := r.db.Model(&models.Title{})

	if params.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", params.Category)
	}
	if params.Genre != "" {
		query = query.Joins("JOIN title_genres ON title_genres.title_id = titles.id").
			Joins("JOIN genres ON genres.id = title_genres.genre_id").
			Where("genres.slug = ?", params.Genre)
	}
	if params.Name != "" {
		query = query.Where("titles.name LIKE ?", "%"+params.Name+"%")
	}
	if params.Year > 0 {
		query = query.Where("titles.year = ?", params.Year)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Select(ratingSelect).
		Preload("Category").
		Preload("Genres").
		Order("titles.name").
		Offset(offset).
		Limit(params.Limit).
		Find(&titles).Error

	return titles, total, err
}

func (r *titleRepository) Update(title *models.Title) error {
	return r.db.Omit("Genres").Save(title).Error
}

func (r *titleRepository) ReplaceGenres(title *models.Title, genres []models.Genre) error {
	if err := r.db.Model(title).Association("Genres").Replace(genres); err != nil {
		return fmt.Errorf("replace genres: %w", err)
	}
	return nil
}

func (r *titleRepository) Delete(title *models.Title) error {
	return r.db.Select("Genres").Delete(title).Error
}
