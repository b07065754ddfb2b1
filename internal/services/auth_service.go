package services

import (
	"gorm.io/gorm"

	"reviewboard/internal/auth"
	"reviewboard/internal/models"
	"reviewboard/internal/repositories"
	"reviewboard/internal/utils"
	"reviewboard/pkg/apperrors"
)

// AuthService issues opaque bearer tokens and resolves them back to users.
type AuthService interface {
	IssueToken(db *gorm.DB, email, password string) (*models.AuthToken, error)
	Authenticate(db *gorm.DB, key string) (*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// IssueToken verifies the credentials and returns the user's token,
// creating one on first login. An unknown email and a wrong password both
// return the same error so callers cannot probe which accounts exist.
func (s *authService) IssueToken(db *gorm.DB, email, password string) (*models.AuthToken, error) {
	normalized, err := utils.NormalizeEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(db, normalized)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetOrCreate(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to its owning active user.
func (s *authService) Authenticate(db *gorm.DB, key string) (*models.User, error) {
	token, err := s.tokenRepo.FindByKey(db, key)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid token")
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid token")
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("User inactive or deleted")
	}
	return user, nil
}
