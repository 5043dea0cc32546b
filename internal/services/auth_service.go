package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wisteria-dev/taskboard-api/internal/auth"
	"github.com/wisteria-dev/taskboard-api/internal/models"
	"github.com/wisteria-dev/taskboard-api/internal/repository"
	"github.com/wisteria-dev/taskboard-api/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountDeactivated   = errors.New("user account has been deactivated")
	ErrEmailTaken           = errors.New("email address already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles credential verification and user account business
// logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. Account
// deactivation is reported before the password is verified; that ordering is
// part of the contract.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if !auth.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
	Role     string
	Title    string
}

// Register creates a new user with a hashed password. No session is created
// here; the handler decides whether to issue one (admin accounts only).
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      input.IsAdmin,
		IsActive:     true,
		Role:         input.Role,
		Title:        input.Title,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfileInput carries profile field updates. Empty fields are left
// unchanged.
type UpdateProfileInput struct {
	Name  string
	Title string
	Role  string
}

// UpdateProfile updates a user's profile fields.
func (s *AuthService) UpdateProfile(id uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Title != "" {
		user.Title = input.Title
	}
	if input.Role != "" {
		user.Role = input.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// ChangePassword replaces the user's password. The stored value is always
// the hash of the new password, never the plaintext.
func (s *AuthService) ChangePassword(id uint64, newPassword string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return ErrFailedToHashPassword
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// SetActive toggles the account's active flag. Deactivated accounts fail
// login until reactivated.
func (s *AuthService) SetActive(id uint64, active bool) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user account.
func (s *AuthService) DeleteUser(id uint64) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// ListTeam lists users matching the optional search term.
func (s *AuthService) ListTeam(search string, params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.ListTeam(search, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list team: %w", err)
	}

	return users, total, nil
}
