package usecase

import (
	"testing"

	"talenthub/internal/entity"
	"talenthub/pkg/apperr"
	"talenthub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newInteractionUseCase(interactionRepo *MockInteractionRepository, postRepo *MockPostRepository) InteractionUseCase {
	return NewInteractionUseCase(interactionRepo, postRepo, nil, logger.New())
}

func TestRecordView_FirstView(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", Views: 5}, nil)
	interactionRepo.On("UpsertView", "user-1", "post-1").Return(true, nil)
	postRepo.On("IncrementViews", "post-1").Return(nil)

	views, err := uc.RecordView("user-1", "post-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(6), views)
	postRepo.AssertExpectations(t)
}

func TestRecordView_RepeatViewIsIdempotent(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", Views: 5}, nil)
	interactionRepo.On("UpsertView", "user-1", "post-1").Return(false, nil)

	views, err := uc.RecordView("user-1", "post-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), views)
	postRepo.AssertNotCalled(t, "IncrementViews", "post-1")
}

func TestToggleLike_On(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", AuthorID: "user-2"}, nil)
	interactionRepo.On("HasLike", "user-1", "post-1").Return(false, nil)
	interactionRepo.On("CreateLike", "user-1", "post-1").Return(true, nil)
	interactionRepo.On("CountLikes", "post-1").Return(int64(4), nil)

	liked, likes, err := uc.ToggleLike("user-1", "post-1")

	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(4), likes)
}

func TestToggleLike_Off(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", AuthorID: "user-2"}, nil)
	interactionRepo.On("HasLike", "user-1", "post-1").Return(true, nil)
	interactionRepo.On("DeleteLike", "user-1", "post-1").Return(nil)
	interactionRepo.On("CountLikes", "post-1").Return(int64(3), nil)

	liked, likes, err := uc.ToggleLike("user-1", "post-1")

	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(3), likes)
	interactionRepo.AssertNotCalled(t, "CreateLike", "user-1", "post-1")
}

func TestToggleLike_OwnPostForbidden(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", AuthorID: "user-1"}, nil)

	_, _, err := uc.ToggleLike("user-1", "post-1")

	assert.Error(t, err)
	assert.Equal(t, 403, apperr.StatusCode(err))
}

func TestToggleLike_DeletedPostHidden(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", AuthorID: "user-2", IsDeleted: true}, nil)

	_, _, err := uc.ToggleLike("user-1", "post-1")

	assert.Error(t, err)
	assert.Equal(t, 404, apperr.StatusCode(err))
}

func TestRecordRating_Bounds(t *testing.T) {
	uc := newInteractionUseCase(new(MockInteractionRepository), new(MockPostRepository))

	for _, value := range []int{0, -1, 6, 100} {
		_, err := uc.RecordRating("user-1", "post-1", value)
		assert.Error(t, err)
		assert.Equal(t, 400, apperr.StatusCode(err))
	}
}

func TestRecordRating_UpsertsAndRecomputes(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", AuthorID: "user-2"}, nil)
	interactionRepo.On("UpsertRating", "user-1", "post-1", 4).Return(nil)
	interactionRepo.On("AverageRating", "post-1").Return(4.5, nil)
	postRepo.On("SetRating", "post-1", 4.5).Return(nil)

	avg, err := uc.RecordRating("user-1", "post-1", 4)

	assert.NoError(t, err)
	assert.Equal(t, 4.5, avg)
	postRepo.AssertExpectations(t)
}

func TestGetAggregates(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", Views: 42}, nil)
	interactionRepo.On("CountLikes", "post-1").Return(int64(7), nil)
	interactionRepo.On("AverageRating", "post-1").Return(3.8, nil)

	agg, err := uc.GetAggregates("post-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), agg.Views)
	assert.Equal(t, int64(7), agg.Likes)
	assert.Equal(t, 3.8, agg.AvgRating)
}

func TestRecordView_PostNotFound(t *testing.T) {
	interactionRepo := new(MockInteractionRepository)
	postRepo := new(MockPostRepository)
	uc := newInteractionUseCase(interactionRepo, postRepo)

	postRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.RecordView("user-1", "missing")

	assert.Error(t, err)
	assert.Equal(t, 404, apperr.StatusCode(err))
}
