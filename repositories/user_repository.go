package repositories

import (
	"gorm.io/gorm"

	"title-review-api/models"
)

type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	FindByUsernameOrEmail(username, email string) ([]models.User, error)
	GetList(params models.UserListParams) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(user *models.User) error {
	return r.db.Delete(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

// FindByUsernameOrEmail returns every user matching either field; the signup
// flow inspects the rows to distinguish full matches from partial conflicts.
func (r *userRepository) FindByUsernameOrEmail(username, email string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("username = ? OR email = ?", username, email).Find(&users).Error
	return users, err
}

func (r *userRepository) GetList(params models.UserListParams) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{})
	if params.Search != "" {
		query = query.Where("username LIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("username").Offset(offset).Limit(params.Limit).Find(&users).Error
	return users, total, err
}
