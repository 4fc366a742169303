// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradefolio_backend/internal/feature/auth/domain/entity"
	"tradefolio_backend/internal/feature/auth/transport/http/dto"
	"tradefolio_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Logout(ctx context.Context, rawToken string)
	Verify(ctx context.Context, rawToken string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth       AuthUsecase
	cookieName string
	cookieAge  int
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, cookieName string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		cookieName: cookieName,
		cookieAge:  int(tokenTTL.Seconds()),
	}
}

// setSessionCookie attaches the session token as an httpOnly cookie.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.cookieName, token, h.cookieAge, "/", "", false, true)
}

// Signup handles POST /auth/signup.
// Returns 201 with the created user and a session token, 400 on validation
// failure, and 400 with a conflict message when the email is taken.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "All fields are required"})
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "User already exists"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server error"})
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "User signed up successfully",
		User:    dto.NewUserPayload(user),
		Token:   token,
	})
}

// Login handles POST /auth/login.
// Wrong email and wrong password produce the same generic 400 so the
// response reveals nothing about which field was incorrect.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "All fields are required"})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Incorrect email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server error"})
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "User logged in successfully",
		User:    dto.NewUserPayload(user),
		Token:   token,
	})
}

// Logout handles POST /auth/logout. It clears the session cookie and, when a
// session store is configured, revokes the token server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil {
		h.auth.Logout(c.Request.Context(), token)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Logged out"})
}

// Verify handles POST /auth/verify, the lightweight cookie check used by the
// frontend home page. It always responds 200; Status reports the outcome.
func (h *AuthHandler) Verify(c *gin.Context) {
	token, err := c.Cookie(h.cookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, dto.VerifyResponse{Status: false})
		return
	}

	user, err := h.auth.Verify(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, dto.VerifyResponse{Status: false})
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Status: true, User: user.Username})
}
