package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang-exercisetracker/helpers"
	"golang-exercisetracker/middleware"
	"golang-exercisetracker/models"
	"golang-exercisetracker/store"

	"github.com/gin-gonic/gin"
)

type addExerciseRequest struct {
	UserID      string `form:"userId" json:"userId"`
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

// AddExercise handles POST /api/exercise/add.
func AddExercise(users store.UserStore, exercises store.ExerciseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req addExerciseRequest
		if err := c.ShouldBind(&req); err != nil {
			c.Error(middleware.NewStatusError(http.StatusBadRequest, "unknown _id"))
			return
		}

		user, err := users.FindByID(ctx, req.UserID)
		if errors.Is(err, store.ErrNotFound) {
			c.Error(middleware.NewStatusError(http.StatusBadRequest, "unknown _id"))
			return
		}
		if err != nil {
			c.Error(err)
			return
		}

		duration, err := strconv.Atoi(req.Duration)
		if err != nil {
			c.Error(middleware.NewValidationError("duration",
				fmt.Sprintf("Cast to Number failed for value %q at path \"duration\"", req.Duration)))
			return
		}

		// An omitted date means today.
		date := helpers.Today()
		if req.Date != "" {
			date, err = helpers.ParseDay(req.Date)
			if err != nil {
				c.Error(middleware.NewValidationError("date",
					fmt.Sprintf("Cast to Date failed for value %q at path \"date\"", req.Date)))
				return
			}
		}

		exercise := models.Exercise{
			Username:    user.Username,
			Description: req.Description,
			Duration:    duration,
			Date:        date,
		}

		if err := exercises.Insert(ctx, exercise); err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username":    user.Username,
			"description": req.Description,
			"duration":    duration,
			"_id":         req.UserID,
			"date":        helpers.FormatDay(date),
		})
	}
}

// GetLog handles GET /api/exercise/log.
func GetLog(users store.UserStore, exercises store.ExerciseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		user, err := users.FindByID(ctx, c.Query("userId"))
		if errors.Is(err, store.ErrNotFound) {
			c.Error(middleware.NewStatusError(http.StatusBadRequest, "unknown userId"))
			return
		}
		if err != nil {
			c.Error(err)
			return
		}

		query := store.LogQuery{Username: user.Username}

		// Malformed bounds are ignored rather than rejected.
		if from, err := helpers.ParseDay(c.Query("from")); err == nil {
			query.From = &from
		}
		if to, err := helpers.ParseDay(c.Query("to")); err == nil {
			query.To = &to
		}

		// A limit of zero means unlimited, as does anything that fails to
		// parse.
		if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && limit > 0 {
			query.Limit = limit
		}

		results, err := exercises.FindLog(ctx, query)
		if err != nil {
			c.Error(err)
			return
		}

		entries := make([]gin.H, 0, len(results))
		for _, e := range results {
			entries = append(entries, gin.H{
				"description": e.Description,
				"duration":    e.Duration,
				"date":        helpers.FormatDay(e.Date),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"_id":      user.ID,
			"username": user.Username,
			"count":    len(results),
			"log":      entries,
		})
	}
}
