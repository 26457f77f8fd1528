package repository

import (
	"time"

	"github.com/interntrack/api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByResetToken finds a user holding an unexpired reset token
func (r *GormUserRepository) FindByResetToken(token string, now time.Time) (*models.User, error) {
	var user models.User
	if err := r.db.
		Where("reset_token = ? AND reset_token_expires > ?", token, now).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetResetToken stores a reset token and its expiry on a user
func (r *GormUserRepository) SetResetToken(userID uint64, token string, expires time.Time) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":         token,
			"reset_token_expires": expires,
		}).Error
}

// UpdatePassword updates the password hash and clears any reset token
func (r *GormUserRepository) UpdatePassword(userID uint64, passwordHash string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash":       passwordHash,
			"reset_token":         nil,
			"reset_token_expires": nil,
		}).Error
}
