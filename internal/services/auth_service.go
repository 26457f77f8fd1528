package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/interntrack/api/internal/constants"
	"github.com/interntrack/api/internal/models"
	"github.com/interntrack/api/internal/repository"
	"github.com/interntrack/api/internal/utils"
)

var (
	ErrEmailTaken           = errors.New("User already exists")
	ErrInvalidCredentials   = errors.New("Invalid credentials")
	ErrInvalidResetToken    = errors.New("Invalid or expired reset token")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles registration, login, and the password reset flow.
type AuthService struct {
	userRepo repository.UserRepository
	emails   *EmailService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, emails *EmailService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		emails:   emails,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user and fires off the welcome email.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if err := utils.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrFailedToCreateUser
	}

	// Welcome email must never block or fail registration.
	s.emails.SendWelcomeAsync(user.Email, user.Name)

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. Any
// mismatch yields the same error so accounts cannot be enumerated.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(strings.ToLower(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ForgotPassword issues a reset token for the given email and sends the
// reset link. An unknown email is not an error: the caller responds with the
// same generic message either way.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return err
	}

	expires := time.Now().Add(constants.ResetTokenTTL)
	if err := s.userRepo.SetResetToken(user.ID, token, expires); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return s.emails.SendPasswordReset(user.Email, token)
}

// ResetPassword validates the token, applies the password policy, and
// replaces the user's password. The token is single use.
func (s *AuthService) ResetPassword(token, password string) error {
	if err := utils.ValidatePassword(password); err != nil {
		return err
	}

	user, err := s.userRepo.FindByResetToken(token, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to find reset token: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	return s.userRepo.UpdatePassword(user.ID, string(hashedPassword))
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	return s.userRepo.FindByID(id)
}
