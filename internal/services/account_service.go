package services

import (
	"gorm.io/gorm"

	"reviewboard/internal/auth"
	"reviewboard/internal/models"
	"reviewboard/internal/repositories"
	"reviewboard/internal/services/dto"
	"reviewboard/internal/utils"
	"reviewboard/pkg/apperrors"
)

// AccountService owns user identity: creation, credential verification and
// profile self-service.
type AccountService interface {
	CreateUser(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	CreateSuperuser(db *gorm.DB, email, password string) (*models.User, error)
	VerifyPassword(user *models.User, candidate string) bool
	UpdateUser(db *gorm.DB, user *models.User, req *dto.UpdateMeRequest) (*models.User, error)
}

type accountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

// CreateUser normalizes the email, hashes the password and persists the
// user. Uniqueness is left to the store's unique index so two concurrent
// registrations cannot both succeed.
func (s *accountService) CreateUser(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	email, err := utils.NormalizeEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidEmail("User must have an email address")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrDuplicateEmail(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// CreateSuperuser creates a user and elevates it. Superuser implies staff.
func (s *accountService) CreateSuperuser(db *gorm.DB, email, password string) (*models.User, error) {
	user, err := s.CreateUser(db, &dto.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := db.Model(user).Updates(map[string]interface{}{
		"is_staff":     true,
		"is_superuser": true,
	}).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// VerifyPassword compares the candidate against the stored bcrypt hash.
func (s *accountService) VerifyPassword(user *models.User, candidate string) bool {
	return auth.CheckPasswordHash(candidate, user.PasswordHash)
}

// UpdateUser applies a partial name/password update, re-hashing the
// password when present.
func (s *accountService) UpdateUser(db *gorm.DB, user *models.User, req *dto.UpdateMeRequest) (*models.User, error) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
