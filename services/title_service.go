package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"title-review-api/models"
	"title-review-api/repositories"
)

type TitleService interface {
	GetList(params models.TitleListParams) ([]models.Title, int64, error)
	GetByID(id uint) (*models.Title, error)
	Create(req models.CreateTitleRequest) (*models.Title, error)
	Update(id uint, req models.UpdateTitleRequest) (*models.Title, error)
	Delete(id uint) error
}

type titleService struct {
	titleRepo    repositories.TitleRepository
	categoryRepo repositories.CategoryRepository
	genreRepo    repositories.GenreRepository
}

func NewTitleService(
	titleRepo repositories.TitleRepository,
	categoryRepo repositories.CategoryRepository,
	genreRepo repositories.GenreRepository,
) TitleService {
	return &titleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
	}
}

func (s *titleService) GetList(params models.TitleListParams) ([]models.Title, int64, error) {
	return s.titleRepo.GetList(params)
}

func (s *titleService) GetByID(id uint) (*models.Title, error) {
	title, err := s.titleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.ErrorNotFound{Resource: "title"}
		}
		return nil, err
	}
	return title, nil
}

func validateYear(year *int) error {
	if year != nil && *year > time.Now().Year() {
		return models.NewFieldError("year", "year cannot be in the future")
	}
	return nil
}

func (s *titleService) Create(req models.CreateTitleRequest) (*models.Title, error) {
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	title := &models.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}

	if req.Category != "" {
		category, err := s.resolveCategory(req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	if len(req.Genre) > 0 {
		genres, err := s.resolveGenres(req.Genre)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
	}

	if err := s.titleRepo.Create(title); err != nil {
		return nil, err
	}
	return s.GetByID(title.ID)
}

func (s *titleService) Update(id uint, req models.UpdateTitleRequest) (*models.Title, error) {
	title, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		if *req.Category == "" {
			title.CategoryID = nil
			title.Category = nil
		} else {
			category, err := s.resolveCategory(*req.Category)
			if err != nil {
				return nil, err
			}
			title.CategoryID = &category.ID
		}
	}

	if err := s.titleRepo.Update(title); err != nil {
		return nil, err
	}

	if req.Genre != nil {
		genres, err := s.resolveGenres(*req.Genre)
		if err != nil {
			return nil, err
		}
		if err := s.titleRepo.ReplaceGenres(title, genres); err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

func (s *titleService) Delete(id uint) error {
	title, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.titleRepo.Delete(title)
}

func (s *titleService) resolveCategory(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.ErrorNotFound{Resource: "category"}
		}
		return nil, err
	}
	return category, nil
}

func (s *titleService) resolveGenres(slugs []string) ([]models.Genre, error) {
	genres, err := s.genreRepo.GetBySlugs(slugs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(slugs) {
		return nil, &models.ErrorNotFound{Resource: "genre"}
	}
	return genres, nil
}
