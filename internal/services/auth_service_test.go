package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"reviewboard/internal/models"
	"reviewboard/internal/repositories"
	"reviewboard/internal/services/dto"
	"reviewboard/pkg/apperrors"
)

func newAuthFixture(t *testing.T) (*gorm.DB, AccountService, AuthService) {
	t.Helper()

	conn := newTestDB(t)
	userRepo := repositories.NewUserRepository()
	accountSvc := NewAccountService(userRepo)
	authSvc := NewAuthService(userRepo, repositories.NewTokenRepository())
	return conn, accountSvc, authSvc
}

func TestIssueToken_Success(t *testing.T) {
	conn, accountSvc, authSvc := newAuthFixture(t)

	_, err := accountSvc.CreateUser(conn, &dto.RegisterRequest{Email: "test@test.com", Password: "123456"})
	assert.NoError(t, err)

	token, err := authSvc.IssueToken(conn, "test@test.com", "123456")
	assert.NoError(t, err)
	assert.NotEmpty(t, token.Key)
}

func TestIssueToken_ReusedAcrossLogins(t *testing.T) {
	conn, accountSvc, authSvc := newAuthFixture(t)

	_, err := accountSvc.CreateUser(conn, &dto.RegisterRequest{Email: "test@test.com", Password: "123456"})
	assert.NoError(t, err)

	first, err := authSvc.IssueToken(conn, "test@test.com", "123456")
	assert.NoError(t, err)
	second, err := authSvc.IssueToken(conn, "test@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, first.Key, second.Key)
}

func TestIssueToken_UniformFailure(t *testing.T) {
	conn, accountSvc, authSvc := newAuthFixture(t)

	_, err := accountSvc.CreateUser(conn, &dto.RegisterRequest{Email: "test@test.com", Password: "123456"})
	assert.NoError(t, err)

	// Wrong password and unknown account must be indistinguishable.
	_, errWrongPassword := authSvc.IssueToken(conn, "test@test.com", "wrong password")
	_, errNoUser := authSvc.IssueToken(conn, "ghost@test.com", "123456")

	assert.Equal(t, apperrors.ErrInvalidCredentials, errWrongPassword)
	assert.Equal(t, apperrors.ErrInvalidCredentials, errNoUser)

	appErr, ok := apperrors.AsAppError(errWrongPassword)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestIssueToken_MatchesCaseInsensitiveDomain(t *testing.T) {
	conn, accountSvc, authSvc := newAuthFixture(t)

	_, err := accountSvc.CreateUser(conn, &dto.RegisterRequest{Email: "test@test.com", Password: "123456"})
	assert.NoError(t, err)

	token, err := authSvc.IssueToken(conn, "test@TEST.com", "123456")
	assert.NoError(t, err)
	assert.NotEmpty(t, token.Key)
}

func TestAuthenticate_ResolvesTokenToUser(t *testing.T) {
	conn, accountSvc, authSvc := newAuthFixture(t)

	created, err := accountSvc.CreateUser(conn, &dto.RegisterRequest{Email: "test@test.com", Password: "123456"})
	assert.NoError(t, err)

	token, err := authSvc.IssueToken(conn, "test@test.com", "123456")
	assert.NoError(t, err)

	user, err := authSvc.Authenticate(conn, token.Key)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthenticate_RejectsUnknownToken(t *testing.T) {
	conn, _, authSvc := newAuthFixture(t)

	_, err := authSvc.Authenticate(conn, "no-such-token")
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
}

func TestAuthenticate_RejectsInactiveUser(t *testing.T) {
	conn, accountSvc, authSvc := newAuthFixture(t)

	created, err := accountSvc.CreateUser(conn, &dto.RegisterRequest{Email: "test@test.com", Password: "123456"})
	assert.NoError(t, err)

	token, err := authSvc.IssueToken(conn, "test@test.com", "123456")
	assert.NoError(t, err)

	assert.NoError(t, conn.Model(&models.User{}).Where("id = ?", created.ID).Update("is_active", false).Error)

	_, err = authSvc.Authenticate(conn, token.Key)
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
}
