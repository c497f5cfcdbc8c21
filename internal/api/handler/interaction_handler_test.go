package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"popview/internal/api/dto"
	"popview/internal/api/handler"
	"popview/internal/api/models"
	"popview/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInteractionService struct {
	mock.Mock
}

func (m *MockInteractionService) UpsertComment(ctx context.Context, userID, titleID int64, req dto.UpsertCommentDTO) error {
	args := m.Called(ctx, userID, titleID, req)
	return args.Error(0)
}

func (m *MockInteractionService) GetComments(ctx context.Context, userID, titleID int64) ([]models.UserTitle, error) {
	args := m.Called(ctx, userID, titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserTitle), args.Error(1)
}

func (m *MockInteractionService) GetCommentsForTitle(ctx context.Context, titleID int64) ([]models.UserTitle, error) {
	args := m.Called(ctx, titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserTitle), args.Error(1)
}

func (m *MockInteractionService) UpdateComment(ctx context.Context, userID, titleID int64, req dto.UpdateCommentDTO) error {
	args := m.Called(ctx, userID, titleID, req)
	return args.Error(0)
}

func (m *MockInteractionService) ClearComment(ctx context.Context, userID, titleID int64) error {
	args := m.Called(ctx, userID, titleID)
	return args.Error(0)
}

func (m *MockInteractionService) SetRating(ctx context.Context, userID, titleID int64, rating float64) error {
	args := m.Called(ctx, userID, titleID, rating)
	return args.Error(0)
}

func setupInteractionRouter(mockService *MockInteractionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewInteractionHandler(mockService, testLogger())
	h.RegisterRoutes(r.Group("/users"))
	h.RegisterTitleRoutes(r.Group("/titles"))
	return r
}

func TestInteractionHandler_Upsert(t *testing.T) {
	mockService := new(MockInteractionService)
	r := setupInteractionRouter(mockService)

	body, _ := json.Marshal(gin.H{"comment": "great watch", "rating": 3.5})

	t.Run("Success", func(t *testing.T) {
		mockService.On("UpsertComment", mock.Anything, int64(1), int64(2), mock.Anything).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/users/1/titles/2/comments", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidRating", func(t *testing.T) {
		mockService.On("UpsertComment", mock.Anything, int64(1), int64(2), mock.Anything).Return(service.ErrInvalidRating).Once()

		req, _ := http.NewRequest(http.MethodPost, "/users/1/titles/2/comments", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("TitleNotFound", func(t *testing.T) {
		mockService.On("UpsertComment", mock.Anything, int64(1), int64(99), mock.Anything).Return(service.ErrTitleNotFound).Once()

		req, _ := http.NewRequest(http.MethodPost, "/users/1/titles/99/comments", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingComment", func(t *testing.T) {
		bad, _ := json.Marshal(gin.H{"rating": 3.5})
		req, _ := http.NewRequest(http.MethodPost, "/users/1/titles/2/comments", bytes.NewReader(bad))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInteractionHandler_Get(t *testing.T) {
	mockService := new(MockInteractionService)
	r := setupInteractionRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		comment := "solid"
		rows := []models.UserTitle{{UserID: 1, TitleID: 2, Comment: &comment, Rating: 4}}
		mockService.On("GetComments", mock.Anything, int64(1), int64(2)).Return(rows, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/users/1/titles/2/comments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "solid")
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyIsNotFound", func(t *testing.T) {
		mockService.On("GetComments", mock.Anything, int64(1), int64(3)).Return(nil, service.ErrNoCommentsFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/users/1/titles/3/comments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestInteractionHandler_ListForTitle(t *testing.T) {
	mockService := new(MockInteractionService)
	r := setupInteractionRouter(mockService)

	comment := "binged it"
	rows := []models.UserTitle{{UserID: 5, TitleID: 2, Comment: &comment, Rating: 3.5}}
	mockService.On("GetCommentsForTitle", mock.Anything, int64(2)).Return(rows, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/titles/2/comments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "binged it")
	mockService.AssertExpectations(t)
}

func TestInteractionHandler_SetRating(t *testing.T) {
	mockService := new(MockInteractionService)
	r := setupInteractionRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.On("SetRating", mock.Anything, int64(1), int64(2), 3.5).Return(nil).Once()

		body, _ := json.Marshal(gin.H{"rating": 3.5})
		req, _ := http.NewRequest(http.MethodPut, "/users/1/titles/2/rating", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingRating", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPut, "/users/1/titles/2/rating", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NoInteraction", func(t *testing.T) {
		mockService.On("SetRating", mock.Anything, int64(1), int64(2), 2.0).Return(service.ErrInteractionNotFound).Once()

		body, _ := json.Marshal(gin.H{"rating": 2.0})
		req, _ := http.NewRequest(http.MethodPut, "/users/1/titles/2/rating", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestInteractionHandler_Clear(t *testing.T) {
	mockService := new(MockInteractionService)
	r := setupInteractionRouter(mockService)

	mockService.On("ClearComment", mock.Anything, int64(1), int64(2)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/users/1/titles/2/comments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "comment cleared")
	mockService.AssertExpectations(t)
}
