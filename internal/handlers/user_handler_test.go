package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"reviewboard/internal/auth"
	"reviewboard/internal/models"
)

func TestCreateUser_Valid(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, http.MethodPost, "/user/create", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "123456",
		"name":     "Test Name",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var parsed map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, "test@test.com", parsed["email"])
	assert.Equal(t, "Test Name", parsed["name"])
	assert.NotEmpty(t, parsed["id"])
	assert.NotContains(t, parsed, "password")

	var user models.User
	assert.NoError(t, ts.DB.First(&user, "email = ?", "test@test.com").Error)
	assert.True(t, auth.CheckPasswordHash("123456", user.PasswordHash))
	assert.NotEqual(t, "123456", user.PasswordHash)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)

	payload := map[string]interface{}{
		"email":    "test@test.com",
		"password": "123456",
		"name":     "Test Name",
	}
	res, _ := ts.sendRequest(t, http.MethodPost, "/user/create", "", payload)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.sendRequest(t, http.MethodPost, "/user/create", "", payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var count int64
	assert.NoError(t, ts.DB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateUser_ShortPassword(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, http.MethodPost, "/user/create", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "1234",
		"name":     "Test Name",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var count int64
	assert.NoError(t, ts.DB.Model(&models.User{}).Where("email = ?", "test@test.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	ts := newTestServer(t)

	for _, email := range []string{"", "not-an-email"} {
		res, _ := ts.sendRequest(t, http.MethodPost, "/user/create", "", map[string]interface{}{
			"email":    email,
			"password": "123456",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "email: %q", email)
	}
}

func TestCreateToken_Valid(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, http.MethodPost, "/user/create", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "123456",
		"name":     "Test Name",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.sendRequest(t, http.MethodPost, "/user/token", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "123456",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var parsed map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.NotEmpty(t, parsed["token"])
}

func TestCreateToken_WrongPassword(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, http.MethodPost, "/user/create", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "123456",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.sendRequest(t, http.MethodPost, "/user/token", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "wrong password",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.NotContains(t, body, `"token"`)
}

func TestCreateToken_NoUser(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, http.MethodPost, "/user/token", "", map[string]interface{}{
		"email":    "ghost@test.com",
		"password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.NotContains(t, body, `"token"`)
}

func TestCreateToken_MissingFields(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, http.MethodPost, "/user/token", "", map[string]interface{}{
		"email": "test@test.com",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMe_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, http.MethodGet, "/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.sendRequest(t, http.MethodGet, "/user/me", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMe_DatabaseFaultIsNot401(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "test@test.com", "123456")

	sqlDB, err := ts.DB.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	res, _ := ts.sendRequest(t, http.MethodGet, "/user/me", token, nil)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestMe_ReturnsProfile(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "test@test.com", "123456")

	res, body := ts.sendRequest(t, http.MethodGet, "/user/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var parsed map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, "test@test.com", parsed["email"])
	assert.Equal(t, "Test Name", parsed["name"])
}

func TestMe_PostNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "test@test.com", "123456")

	res, _ := ts.sendRequest(t, http.MethodPost, "/user/me", token, map[string]interface{}{})
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestUpdateMe_PartialUpdate(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "test@test.com", "123456")

	res, body := ts.sendRequest(t, http.MethodPatch, "/user/me", token, map[string]interface{}{
		"name":     "New Name",
		"password": "new-password",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var parsed map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, "New Name", parsed["name"])

	// Old password no longer works, new one does.
	res, _ = ts.sendRequest(t, http.MethodPost, "/user/token", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.sendRequest(t, http.MethodPost, "/user/token", "", map[string]interface{}{
		"email":    "test@test.com",
		"password": "new-password",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUpdateMe_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, http.MethodPatch, "/user/me", "", map[string]interface{}{
		"name": "New Name",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
