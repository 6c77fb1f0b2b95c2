// services/auth_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fixtrack-backend/models"
	"fixtrack-backend/utils"
)

// AuthService authenticates staff and manages the admin account bootstrap.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate checks a username/password pair. Unknown username and wrong
// password return the same ErrInvalidCredentials so callers cannot probe for
// which usernames exist.
func (s *AuthService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// GetAdmin loads one staff identity by id.
func (s *AuthService) GetAdmin(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// EnsureAdmin creates the admin account, or resets its email and password if
// the username already exists. This backs the -create-admin bootstrap command
// and is the only way credentials enter the system.
func (s *AuthService) EnsureAdmin(username, email, password string) (*models.Admin, error) {
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are all required")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	err = s.db.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.Admin{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		}
		if err := s.db.Create(&admin).Error; err != nil {
			return nil, err
		}
		return &admin, nil
	}
	if err != nil {
		return nil, err
	}

	admin.Email = email
	admin.PasswordHash = hash
	if err := s.db.Save(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
