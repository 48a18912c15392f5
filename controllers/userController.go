package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang-exercisetracker/helpers"
	"golang-exercisetracker/middleware"
	"golang-exercisetracker/models"
	"golang-exercisetracker/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const requestTimeout = 10 * time.Second

type newUserRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
}

// CreateUser handles POST /api/exercise/new-user.
func CreateUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req newUserRequest
		if err := c.ShouldBind(&req); err != nil {
			c.Error(middleware.NewValidationError("username", "Path `username` is required."))
			return
		}

		if err := validate.Struct(req); err != nil {
			c.Error(middleware.NewValidationError("username", "Path `username` is required."))
			return
		}

		if _, err := users.FindByUsername(ctx, req.Username); err == nil {
			c.Error(middleware.NewStatusError(http.StatusBadRequest, "username already taken"))
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			c.Error(err)
			return
		}

		user := models.User{
			ID:       helpers.NewUserID(),
			Username: req.Username,
		}

		if err := users.Insert(ctx, user); err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				// Lost the insert race to a concurrent create; same answer
				// as the lookup above.
				c.Error(middleware.NewStatusError(http.StatusBadRequest, "username already taken"))
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"username": user.Username, "_id": user.ID})
	}
}
