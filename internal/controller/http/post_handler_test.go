package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talenthub/internal/entity"
	"talenthub/internal/repo/persistent"
	"talenthub/internal/usecase"
	"talenthub/pkg/apperr"
	"talenthub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(authorID string, role entity.UserRole, in usecase.CreatePostInput, files []usecase.MediaUpload) (*entity.Post, error) {
	args := m.Called(authorID, role, in, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID, viewerID string, role entity.UserRole) (*entity.Post, error) {
	args := m.Called(postID, viewerID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(filter persistent.PostFilter, viewerID string, limit, offset int) ([]*entity.Post, int64, error) {
	args := m.Called(filter, viewerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostUseCase) UpdatePost(postID, actorID string, role entity.UserRole, in usecase.UpdatePostInput) (*entity.Post, error) {
	args := m.Called(postID, actorID, role, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) SoftDelete(postID, actorID string, role entity.UserRole, reason string) error {
	args := m.Called(postID, actorID, role, reason)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

// MockInteractionUseCase is a mock implementation of InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) RecordView(userID, postID string) (int64, error) {
	args := m.Called(userID, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionUseCase) ToggleLike(userID, postID string) (bool, int64, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionUseCase) RecordRating(userID, postID string, value int) (float64, error) {
	args := m.Called(userID, postID, value)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockInteractionUseCase) GetAggregates(postID string) (*entity.Aggregates, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Aggregates), args.Error(1)
}

func (m *MockInteractionUseCase) PostInteractions(postID string, kind entity.InteractionKind) ([]*entity.Interaction, *persistent.InteractionStats, error) {
	args := m.Called(postID, kind)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*entity.Interaction), args.Get(1).(*persistent.InteractionStats), args.Error(2)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestPostHandler(postUC *MockPostUseCase, interactionUC *MockInteractionUseCase) *PostHandler {
	return NewPostHandler(postUC, interactionUC, logger.New())
}

func TestInteract_Like(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/interact", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Interact(c)
	})

	interactionUC.On("ToggleLike", "user-123", "post-123").Return(true, int64(8), nil)

	body := `{"type":"like"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/interact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(8), response["likes"])

	interactionUC.AssertExpectations(t)
}

func TestInteract_SelfVoteForbidden(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/interact", func(c *gin.Context) {
		c.Set("user_id", "author-1")
		handler.Interact(c)
	})

	interactionUC.On("ToggleLike", "author-1", "post-123").
		Return(false, int64(0), apperr.Authorization("you cannot vote on your own post"))

	body := `{"type":"like"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/interact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "you cannot vote on your own post", response["error"])
}

func TestInteract_Rating(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/interact", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Interact(c)
	})

	interactionUC.On("RecordRating", "user-123", "post-123", 5).Return(4.6, nil)

	body := `{"type":"rating","value":5}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/interact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 4.6, response["averageRating"])
}

func TestInteract_UnknownType(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/interact", handler.Interact)

	body := `{"type":"boost"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/interact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPost_NotFoundStatus(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	postUC.On("GetPost", "missing", "", entity.RoleViewer).
		Return(nil, apperr.NotFound("post not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "post not found", response["error"])
}

func TestListPosts_FiltersFromQuery(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	filter := persistent.PostFilter{Type: entity.PostTypeVideo, Status: entity.StatusApproved}
	postUC.On("ListPosts", filter, "", 5, 10).Return([]*entity.Post{
		{ID: "post-1", Title: "Clip"},
	}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?type=video&status=approved&limit=5&offset=10", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["total"])
	posts := response["posts"].([]interface{})
	assert.Len(t, posts, 1)

	postUC.AssertExpectations(t)
}

func TestUpdatePost_Forbidden(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.PUT("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", "creator")
		handler.UpdatePost(c)
	})

	title := "New Title"
	postUC.On("UpdatePost", "post-1", "user-1", entity.RoleCreator, usecase.UpdatePostInput{Title: &title}).
		Return(nil, apperr.Authorization("you can only edit your own posts"))

	body := `{"title":"New Title"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/posts/post-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeletePost_Success(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", "creator")
		handler.DeletePost(c)
	})

	postUC.On("SoftDelete", "post-1", "user-1", entity.RoleCreator, "").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	postUC.AssertExpectations(t)
}

func TestCreatePost_JSONBlog(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", "creator")
		handler.CreatePost(c)
	})

	in := usecase.CreatePostInput{Type: "blog", Title: "My Story", Description: "words"}
	postUC.On("CreatePost", "user-1", entity.RoleCreator, in, []usecase.MediaUpload{}).
		Return(&entity.Post{ID: "post-1", Title: "My Story", Status: entity.StatusPending}, nil)

	body := `{"type":"blog","title":"My Story","description":"words"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "pending", response["status"])
}

func TestPostInteractions_Success(t *testing.T) {
	postUC := new(MockPostUseCase)
	interactionUC := new(MockInteractionUseCase)
	handler := newTestPostHandler(postUC, interactionUC)

	router := setupTestRouter()
	router.GET("/posts/:id/interactions", handler.PostInteractions)

	interactionUC.On("PostInteractions", "post-1", entity.InteractionKind("")).Return(
		[]*entity.Interaction{{ID: "int-1", PostID: "post-1", Kind: entity.InteractionLike}},
		&persistent.InteractionStats{Views: 10, Likes: 1},
		nil,
	)
	interactionUC.On("GetAggregates", "post-1").Return(
		&entity.Aggregates{Views: 10, Likes: 1, AvgRating: 4.5}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/interactions", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotNil(t, response["interactions"])
	assert.NotNil(t, response["stats"])
	assert.NotNil(t, response["aggregates"])
}
