package services

import (
	"errors"
	"log/slog"

	"github.com/Prashant8008/Fitness-Ai/models"
	"github.com/Prashant8008/Fitness-Ai/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

type RegisterInput struct {
	PhoneNumber     string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

// Register creates a new account. Phone numbers are unique; a non-empty
// email must also be unused.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if !utils.ValidPassword(in.Password) {
		return nil, ErrWeakPassword
	}

	var count int64
	s.db.Model(&models.User{}).Where("phone_number = ?", in.PhoneNumber).Count(&count)
	if count > 0 {
		return nil, ErrDuplicateIdentity
	}
	if in.Email != "" {
		s.db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count)
		if count > 0 {
			return nil, ErrDuplicateIdentity
		}
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Password:    hashed,
		IsActive:    true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	slog.Info("account registered", "userId", user.ID)
	return &user, nil
}

// Authenticate checks the credentials and issues a token. Unknown phone
// numbers and wrong passwords both map to ErrInvalidCredentials so the
// response never reveals whether an account exists.
func (s *AuthService) Authenticate(phoneNumber, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("phone_number = ? AND is_active = ?", phoneNumber, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// FindUser looks up an active account by id.
func (s *AuthService) FindUser(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
