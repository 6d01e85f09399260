package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Norahnjesh/Transport-Solution/internal/middleware"
	"github.com/Norahnjesh/Transport-Solution/internal/models"
	"github.com/Norahnjesh/Transport-Solution/internal/query"
	"github.com/Norahnjesh/Transport-Solution/internal/repository"
	"github.com/gin-gonic/gin"
)

// AuthCommander defines the write-side operations used by AuthHandler.
type AuthCommander interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	SocialLogin(ctx context.Context, name, email, provider string) (*models.User, string, error)
}

// AuthQuerier defines the read-side operations used by AuthHandler.
type AuthQuerier interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetUser(ctx context.Context, id int64) (*models.UserView, error)
}

// AuthHandler routes requests to the command or query service as appropriate.
type AuthHandler struct {
	commands AuthCommander
	queries  AuthQuerier
}

// Validation tags are presence-only: this service checks nothing beyond
// required fields.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SocialLoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Provider string `json:"provider" validate:"required"`
}

type RegisterResponse struct {
	Message string           `json:"message"`
	User    *models.UserView `json:"user"`
}

type TokenResponse struct {
	Token string           `json:"token"`
	User  *models.UserView `json:"user"`
}

func NewAuthHandler(commands AuthCommander, queries AuthQuerier) *AuthHandler {
	return &AuthHandler{commands: commands, queries: queries}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, "Missing fields", validationErrors)
		return
	}

	user, err := h.commands.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			middleware.RespondWithError(c, http.StatusBadRequest, "Email already in use")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Message: "User registered", User: user.View()})
}

// Login performs no presence validation of its own: an empty or missing
// email simply fails the lookup and reports invalid credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	signed, user, err := h.queries.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, query.ErrInvalidCredentials) {
			middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: signed, User: user.View()})
}

// SocialLogin trusts that the caller has already verified the identity with
// the named provider; no credential is checked here.
func (h *AuthHandler) SocialLogin(c *gin.Context) {
	var req SocialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, "Missing email or provider", validationErrors)
		return
	}

	user, signed, err := h.commands.SocialLogin(c.Request.Context(), req.Name, req.Email, req.Provider)
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: signed, User: user.View()})
}

// Me returns the serialised form of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	view, err := h.queries.GetUser(c.Request.Context(), userID)
	if err != nil {
		middleware.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, view)
}
