package services

import (
	"errors"

	"gorm.io/gorm"

	"title-review-api/models"
	"title-review-api/repositories"
)

type GenreService interface {
	GetList(params models.ListParams, search string) ([]models.Genre, int64, error)
	Create(req models.CreateGenreRequest) (*models.Genre, error)
	DeleteBySlug(slug string) error
}

type genreService struct {
	genreRepo repositories.GenreRepository
}

func NewGenreService(genreRepo repositories.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) GetList(params models.ListParams, search string) ([]models.Genre, int64, error) {
	return s.genreRepo.GetList(params, search)
}

func (s *genreService) Create(req models.CreateGenreRequest) (*models.Genre, error) {
	genre := &models.Genre{Name: req.Name, Slug: req.Slug}
	if err := s.genreRepo.Create(genre); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewFieldError("slug", "a genre with this slug already exists")
		}
		return nil, err
	}
	return genre, nil
}

func (s *genreService) DeleteBySlug(slug string) error {
	genre, err := s.genreRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.ErrorNotFound{Resource: "genre"}
		}
		return err
	}
	return s.genreRepo.Delete(genre)
}
