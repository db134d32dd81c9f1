package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-interviewer/internal/apperrors"
	"alfredoptarigan/ai-interviewer/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	UsernameExists(username string) (bool, error)
	FindByCredentials(username, password string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create implements UserRepository.
func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// UsernameExists implements UserRepository.
func (r *userRepository) UsernameExists(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}

// FindByCredentials implements UserRepository. The password comparison
// is plain equality against the stored value.
func (r *userRepository) FindByCredentials(username, password string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindByID implements UserRepository.
func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownAccount
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
