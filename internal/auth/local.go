// Package auth provides the local registration and login handlers and
// the current-user lookup.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/prateekh777/AIInterviewV4-0/internal/metrics"
	"github.com/prateekh777/AIInterviewV4-0/internal/model"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
	"github.com/prateekh777/AIInterviewV4-0/internal/utilities"
)

// LocalAuthHandler handles username/password registration and login
// against the storage layer.
type LocalAuthHandler struct {
	Store storage.Storage
	Log   zerolog.Logger
}

// NewLocalAuthHandler construct new LocalAuthHandler instance
func NewLocalAuthHandler(store storage.Storage, log zerolog.Logger) *LocalAuthHandler {
	return &LocalAuthHandler{Store: store, Log: log}
}

// RegisterHandler handles local registration by receiving username,
// password and email. Duplicate username or email is rejected before any
// write; the storage layer re-checks both atomically with the insert.
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body model.RegisterRequest true "Registration information"
// @Success 201 {object} model.User "Created user, password omitted"
// @Failure 400 {object} utilities.ErrorResponse "Validation error or duplicate username/email"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /auth/register [post]
func (h *LocalAuthHandler) RegisterHandler(c *gin.Context) {
	var info model.RegisterRequest
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Message: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	user, err := h.Store.CreateUser(model.User{
		Username: info.Username,
		Password: info.Password,
		Email:    info.Email,
		FullName: info.FullName,
		Phone:    info.Phone,
	})

	switch {
	case errors.Is(err, storage.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Username already exists"})
		return

	case errors.Is(err, storage.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Email already exists"})
		return

	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	metrics.RegistrationsTotal.Inc()
	h.Log.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	c.JSON(http.StatusCreated, user)
}

// LoginHandler verifies username and password. Unknown username and wrong
// password produce the same response on purpose, so callers cannot
// enumerate accounts; the log line tells them apart.
// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.User "Authenticated user, password omitted"
// @Failure 400 {object} utilities.ErrorResponse "Missing username or password"
// @Failure 401 {object} utilities.ErrorResponse "Invalid credentials"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /auth/login [post]
func (h *LocalAuthHandler) LoginHandler(c *gin.Context) {
	var info model.LoginRequest
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Message: "Username and password are required",
		})
		return
	}

	user, err := h.Store.GetUserByUsername(info.Username)

	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.Log.Warn().Str("username", info.Username).Msg("login failed: unknown username")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Message: "Invalid credentials"})
		return

	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	if user.Password != info.Password {
		h.Log.Warn().Str("username", info.Username).Msg("login failed: password mismatch")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Message: "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CurrentUserHandler resolves the calling user from the Authorization
// header (the bearer token is the user id) or a userId query param.
// @Summary Get the current user
// @Tags Auth
// @Produce json
// @Param Authorization header string false "Bearer <user id>"
// @Param userId query integer false "User id fallback"
// @Success 200 {object} model.User "Current user, password omitted"
// @Failure 400 {object} utilities.ErrorResponse "Missing or invalid user id"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Router /user [get]
func (h *LocalAuthHandler) CurrentUserHandler(c *gin.Context) {
	userID, err := utilities.ExtractBearerUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Valid user ID is required"})
		return
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
