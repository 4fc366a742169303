package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tradefolio_backend/internal/feature/auth/domain/entity"
	"tradefolio_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error)
	LoginFunc  func(ctx context.Context, email, password string) (*entity.User, string, error)
	LogoutFunc func(ctx context.Context, rawToken string)
	VerifyFunc func(ctx context.Context, rawToken string) (*entity.User, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return &entity.User{ID: 1, Email: in.Email, Username: in.Username, IsActive: true}, "token", nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, "", usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) Logout(ctx context.Context, rawToken string) {
	if m.LogoutFunc != nil {
		m.LogoutFunc(ctx, rawToken)
	}
}

func (m *mockAuthUsecase) Verify(ctx context.Context, rawToken string) (*entity.User, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, rawToken)
	}
	return nil, usecase.ErrInvalidCredentials
}

func newTestHandler(uc AuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, "token", 3*24*time.Hour)
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body gin.H, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful signup sets the session cookie", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error) {
				return &entity.User{ID: 1, Email: in.Email, Username: in.Username, IsActive: true}, "signed-token", nil
			},
		}
		router := gin.New()
		router.POST("/auth/signup", newTestHandler(mockUC).Signup)

		w := performJSON(t, router, http.MethodPost, "/auth/signup", gin.H{
			"email":    "test@example.com",
			"password": "password123",
			"username": "tester",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "signed-token", body["token"])

		cookie := w.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "token=signed-token")
		assert.Contains(t, strings.ToLower(cookie), "httponly")
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/signup", newTestHandler(&mockAuthUsecase{}).Signup)

		w := performJSON(t, router, http.MethodPost, "/auth/signup", gin.H{"email": "test@example.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "All fields are required")
	})

	t.Run("invalid email is a 400", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/signup", newTestHandler(&mockAuthUsecase{}).Signup)

		w := performJSON(t, router, http.MethodPost, "/auth/signup", gin.H{
			"email":    "not-an-email",
			"password": "password123",
			"username": "tester",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email reports user exists", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error) {
				return nil, "", usecase.ErrEmailAlreadyExists
			},
		}
		router := gin.New()
		router.POST("/auth/signup", newTestHandler(mockUC).Signup)

		w := performJSON(t, router, http.MethodPost, "/auth/signup", gin.H{
			"email":    "existing@example.com",
			"password": "password123",
			"username": "tester",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful login returns user and token", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (*entity.User, string, error) {
				return &entity.User{ID: 1, Email: email, Username: "tester", IsActive: true}, "signed-token", nil
			},
		}
		router := gin.New()
		router.POST("/auth/login", newTestHandler(mockUC).Login)

		w := performJSON(t, router, http.MethodPost, "/auth/login", gin.H{
			"email":    "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "token=signed-token")
	})

	t.Run("bad credentials yield the generic message", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/login", newTestHandler(&mockAuthUsecase{}).Login)

		w := performJSON(t, router, http.MethodPost, "/auth/login", gin.H{
			"email":    "test@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Incorrect email or password")
		// The body must not reveal which field was wrong.
		assert.NotContains(t, w.Body.String(), "user not found")
		assert.NotContains(t, w.Body.String(), "password mismatch")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("clears the cookie and revokes the token", func(t *testing.T) {
		var revokedToken string
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, rawToken string) {
				revokedToken = rawToken
			},
		}
		router := gin.New()
		router.POST("/auth/logout", newTestHandler(mockUC).Logout)

		w := performJSON(t, router, http.MethodPost, "/auth/logout", nil,
			&http.Cookie{Name: "token", Value: "live-token"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "live-token", revokedToken)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "token=;")
		assert.Contains(t, w.Body.String(), "Logged out")
	})

	t.Run("logout without a cookie still succeeds", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/logout", newTestHandler(&mockAuthUsecase{}).Logout)

		w := performJSON(t, router, http.MethodPost, "/auth/logout", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid cookie reports the username", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			VerifyFunc: func(ctx context.Context, rawToken string) (*entity.User, error) {
				return &entity.User{ID: 1, Username: "tester", IsActive: true}, nil
			},
		}
		router := gin.New()
		router.POST("/auth/verify", newTestHandler(mockUC).Verify)

		w := performJSON(t, router, http.MethodPost, "/auth/verify", nil,
			&http.Cookie{Name: "token", Value: "live-token"})

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["status"])
		assert.Equal(t, "tester", body["user"])
	})

	t.Run("missing cookie reports false with 200", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/verify", newTestHandler(&mockAuthUsecase{}).Verify)

		w := performJSON(t, router, http.MethodPost, "/auth/verify", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["status"])
	})

	t.Run("invalid token reports false with 200", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/verify", newTestHandler(&mockAuthUsecase{}).Verify)

		w := performJSON(t, router, http.MethodPost, "/auth/verify", nil,
			&http.Cookie{Name: "token", Value: "stale-token"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":false`)
	})
}
