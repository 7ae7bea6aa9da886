// Package user provides HTTP handlers for user profile operations.
package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prateekh777/AIInterviewV4-0/internal/model"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
	"github.com/prateekh777/AIInterviewV4-0/internal/utilities"
)

// UserController handles user profile endpoints
type UserController struct {
	Store storage.Storage
}

// NewUserController creates a new instance of UserController
func NewUserController(store storage.Storage) *UserController {
	return &UserController{Store: store}
}

// EditProfileHandler merges a partial profile update onto the user.
// Omitted fields are left untouched; username, email and password cannot
// be changed here.
// @Summary Edit user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param id path integer true "ID of the user"
// @Param profile body model.UserUpdate true "Fields to update; omitted fields are kept"
// @Success 200 {object} model.User "Updated user, password omitted"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id or invalid payload"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Router /users/{id} [patch]
func (uc *UserController) EditProfileHandler(c *gin.Context) {
	id, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid user ID"})
		return
	}

	var req model.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Message: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	user, err := uc.Store.UpdateUser(id, model.User{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
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
