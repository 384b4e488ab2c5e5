package services

import (
	"errors"

	"gorm.io/gorm"

	"title-review-api/models"
	"title-review-api/repositories"
)

type CategoryService interface {
	GetList(params models.ListParams, search string) ([]models.Category, int64, error)
	Create(req models.CreateCategoryRequest) (*models.Category, error)
	DeleteBySlug(slug string) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetList(params models.ListParams, search string) ([]models.Category, int64, error) {
	return s.categoryRepo.GetList(params, search)
}

func (s *categoryService) Create(req models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewFieldError("slug", "a category with this slug already exists")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteBySlug(slug string) error {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.ErrorNotFound{Resource: "category"}
		}
		return err
	}
	return s.categoryRepo.Delete(category)
}
