package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"dreamjournal-be/internal/apperrors"
	"dreamjournal-be/internal/entities"
	"dreamjournal-be/internal/jwt"
	"dreamjournal-be/internal/models"
	"dreamjournal-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	GetMe(userID string) (*models.UserView, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func userView(user *entities.User) models.UserView {
	return models.UserView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// Register creates a new user account and logs it in
func (s *authService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, apperrors.ErrEmailTaken
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user; the unique constraint backstops the existence check
	user, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate JWT token for automatic login after registration
	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  userView(user),
	}, nil
}

// Login authenticates a user and returns user info with JWT token. Unknown
// emails and wrong passwords produce the same error.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  userView(user),
	}, nil
}

// GetMe resolves an authenticated identity to its public user view. Returns
// apperrors.ErrNotFound if the identity no longer maps to a user.
func (s *authService) GetMe(userID string) (*models.UserView, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	view := userView(user)
	return &view, nil
}
