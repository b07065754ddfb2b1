package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reviewboard/internal/app"
	"reviewboard/internal/config"
	"reviewboard/internal/db"
)

// testServer boots the full router against a throwaway sqlite database so
// handler tests exercise the same wiring production uses.
type testServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.Open(db.DialectSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Env = "development"

	router := app.SetupRouter(cfg, conn)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{Server: server, DB: conn}
}

// sendRequest performs an HTTP call with an optional bearer token and JSON
// body, returning the response and its body as a string.
func (ts *testServer) sendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// registerAndLogin creates a user through the API and returns its token.
func (ts *testServer) registerAndLogin(t *testing.T, email, password string) string {
	t.Helper()

	res, body := ts.sendRequest(t, http.MethodPost, "/user/create", "", map[string]interface{}{
		"email":    email,
		"password": password,
		"name":     "Test Name",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed with %d: %s", res.StatusCode, body)
	}

	res, body = ts.sendRequest(t, http.MethodPost, "/user/token", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("token request failed with %d: %s", res.StatusCode, body)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("failed to decode token response: %v", err)
	}
	return parsed.Token
}
