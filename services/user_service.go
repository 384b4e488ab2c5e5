package services

import (
	"errors"

	"gorm.io/gorm"

	"title-review-api/models"
	"title-review-api/repositories"
)

type UserService interface {
	GetList(params models.UserListParams) ([]models.User, int64, error)
	Create(req models.CreateUserRequest) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(username string, req models.UpdateUserRequest, allowRoleChange bool) (*models.User, error)
	Delete(username string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetList(params models.UserListParams) ([]models.User, int64, error) {
	return s.userRepo.GetList(params)
}

// Create is the admin path. Identities created here carry no confirmation
// code until their owner goes through signup.
func (s *userService) Create(req models.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, models.NewFieldError("role", "role must be one of user, moderator, admin")
	}

	matches, err := s.userRepo.FindByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		verr := &models.ErrorValidation{}
		for _, u := range matches {
			if u.Username == req.Username {
				verr.Add("username", "a user with this username already exists")
			}
			if u.Email == req.Email {
				verr.Add("email", "a user with this email already exists")
			}
		}
		return nil, verr
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewFieldError("username", "a user with this username or email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.ErrorNotFound{Resource: "user"}
		}
		return nil, err
	}
	return user, nil
}

// Update patches the profile. Without allowRoleChange the role field is
// silently dropped, which is how the self-service path keeps role read-only.
func (s *userService) Update(username string, req models.UpdateUserRequest, allowRoleChange bool) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil && allowRoleChange {
		if !models.ValidRole(*req.Role) {
			return nil, models.NewFieldError("role", "role must be one of user, moderator, admin")
		}
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewFieldError("email", "a user with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(username string) error {
	user, err := s.GetByUsername(username)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(user)
}
