package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"title-review-api/models"
	"title-review-api/permissions"
	"title-review-api/repositories"
)

type ReviewService interface {
	GetList(titleID uint, params models.ListParams) ([]models.Review, int64, error)
	Get(titleID, reviewID uint) (*models.Review, error)
	Create(titleID uint, author *models.User, req models.CreateReviewRequest) (*models.Review, error)
	Update(titleID, reviewID uint, actor *models.User, req models.UpdateReviewRequest) (*models.Review, error)
	Delete(titleID, reviewID uint, actor *models.User) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	titleRepo  repositories.TitleRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, titleRepo repositories.TitleRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
	}
}

func (s *reviewService) getTitle(titleID uint) (*models.Title, error) {
	title, err := s.titleRepo.GetByID(titleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.ErrorNotFound{Resource: "title"}
		}
		return nil, err
	}
	return title, nil
}

func (s *reviewService) GetList(titleID uint, params models.ListParams) ([]models.Review, int64, error) {
	if _, err := s.getTitle(titleID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.GetList(titleID, params)
}

func (s *reviewService) Get(titleID, reviewID uint) (*models.Review, error) {
	if _, err := s.getTitle(titleID); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.GetByID(titleID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.ErrorNotFound{Resource: "review"}
		}
		return nil, err
	}
	return review, nil
}

// Create enforces one review per (author, title). The repository check gives
// the friendly message; the composite unique index closes the race.
func (s *reviewService) Create(titleID uint, author *models.User, req models.CreateReviewRequest) (*models.Review, error) {
	title, err := s.getTitle(titleID)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsForAuthor(titleID, author.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.ErrorConflict{
			Message: fmt.Sprintf("review for title %q already exists", title.Name),
		}
	}

	review := &models.Review{
		TitleID:  titleID,
		AuthorID: author.ID,
		Text:     req.Text,
		Score:    req.Score,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &models.ErrorConflict{
				Message: fmt.Sprintf("review for title %q already exists", title.Name),
			}
		}
		return nil, err
	}
	return s.reviewRepo.GetByID(titleID, review.ID)
}

func (s *reviewService) Update(titleID, reviewID uint, actor *models.User, req models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.Get(titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanTouchContent(actor, permissions.ActionMutate, review.AuthorID == actor.ID) {
		return nil, &models.ErrorPermission{}
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(titleID, reviewID)
}

func (s *reviewService) Delete(titleID, reviewID uint, actor *models.User) error {
	review, err := s.Get(titleID, reviewID)
	if err != nil {
		return err
	}
	if !permissions.CanTouchContent(actor, permissions.ActionDelete, review.AuthorID == actor.ID) {
		return &models.ErrorPermission{}
	}
	return s.reviewRepo.Delete(review)
}
