package services

import (
	"errors"

	"gorm.io/gorm"

	"title-review-api/models"
	"title-review-api/permissions"
	"title-review-api/repositories"
)

type CommentService interface {
	GetList(titleID, reviewID uint, params models.ListParams) ([]models.Comment, int64, error)
	Get(titleID, reviewID, commentID uint) (*models.Comment, error)
	Create(titleID, reviewID uint, author *models.User, req models.CreateCommentRequest) (*models.Comment, error)
	Update(titleID, reviewID, commentID uint, actor *models.User, req models.UpdateCommentRequest) (*models.Comment, error)
	Delete(titleID, reviewID, commentID uint, actor *models.User) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	reviewRepo  repositories.ReviewRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, reviewRepo repositories.ReviewRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// getReview verifies the full nesting: the review must belong to the title
// in the path, otherwise the whole subtree is a 404.
func (s *commentService) getReview(titleID, reviewID uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(titleID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.ErrorNotFound{Resource: "review"}
		}
		return nil, err
	}
	return review, nil
}

func (s *commentService) GetList(titleID, reviewID uint, params models.ListParams) ([]models.Comment, int64, error) {
	if _, err := s.getReview(titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.commentRepo.GetList(reviewID, params)
}

func (s *commentService) Get(titleID, reviewID, commentID uint) (*models.Comment, error) {
	if _, err := s.getReview(titleID, reviewID); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(reviewID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.ErrorNotFound{Resource: "comment"}
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Create(titleID, reviewID uint, author *models.User, req models.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.getReview(titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: reviewID,
		AuthorID: author.ID,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(reviewID, comment.ID)
}

func (s *commentService) Update(titleID, reviewID, commentID uint, actor *models.User, req models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.Get(titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanTouchContent(actor, permissions.ActionMutate, comment.AuthorID == actor.ID) {
		return nil, &models.ErrorPermission{}
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(reviewID, commentID)
}

func (s *commentService) Delete(titleID, reviewID, commentID uint, actor *models.User) error {
	comment, err := s.Get(titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if !permissions.CanTouchContent(actor, permissions.ActionDelete, comment.AuthorID == actor.ID) {
		return &models.ErrorPermission{}
	}
	return s.commentRepo.Delete(comment)
}
