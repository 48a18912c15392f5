package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"golang-exercisetracker/middleware"
	"golang-exercisetracker/models"
	"golang-exercisetracker/store"

	"github.com/gin-gonic/gin"
)

type fakeUserStore struct {
	users []models.User
	err   error
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) Insert(_ context.Context, user models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return store.ErrUsernameTaken
		}
	}
	f.users = append(f.users, user)
	return nil
}

type fakeExerciseStore struct {
	exercises []models.Exercise
	err       error
}

func (f *fakeExerciseStore) Insert(_ context.Context, exercise models.Exercise) error {
	if f.err != nil {
		return f.err
	}
	f.exercises = append(f.exercises, exercise)
	return nil
}

func (f *fakeExerciseStore) FindLog(_ context.Context, query store.LogQuery) ([]models.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}

	var matched []models.Exercise
	for _, e := range f.exercises {
		if e.Username != query.Username {
			continue
		}
		if query.From != nil && e.Date.Before(*query.From) {
			continue
		}
		if query.To != nil && e.Date.After(*query.To) {
			continue
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	if query.Limit > 0 && int64(len(matched)) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func setupRouter(users store.UserStore, exercises store.ExerciseStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	group := router.Group("/")
	group.POST("/api/exercise/new-user", CreateUser(users))
	group.POST("/api/exercise/add", AddExercise(users, exercises))
	group.GET("/api/exercise/log", GetLog(users, exercises))

	router.NoRoute(middleware.NotFound())
	return router
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
