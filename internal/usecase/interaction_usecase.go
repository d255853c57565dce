package usecase

import (
	"context"
	"fmt"
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/permission"
	"talenthub/internal/repo/persistent"
	"talenthub/pkg/apperr"
	"talenthub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type InteractionUseCase interface {
	RecordView(userID, postID string) (int64, error)
	ToggleLike(userID, postID string) (liked bool, likes int64, err error)
	RecordRating(userID, postID string, value int) (float64, error)
	GetAggregates(postID string) (*entity.Aggregates, error)
	PostInteractions(postID string, kind entity.InteractionKind) ([]*entity.Interaction, *persistent.InteractionStats, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	postRepo        persistent.PostRepository
	redisClient     *redis.Client
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		redisClient:     redisClient,
		logger:          logger,
	}
}

// RecordView counts one view per (user, post) pair: the insert only
// succeeds the first time, and only then does the counter move.
func (uc *interactionUseCase) RecordView(userID, postID string) (int64, error) {
	post, err := uc.visiblePost(postID)
	if err != nil {
		return 0, err
	}

	created, err := uc.interactionRepo.UpsertView(userID, postID)
	if err != nil {
		return 0, apperr.Storage(err)
	}
	if !created {
		return post.Views, nil
	}

	if err := uc.postRepo.IncrementViews(postID); err != nil {
		return 0, apperr.Storage(err)
	}
	return post.Views + 1, nil
}

func (uc *interactionUseCase) ToggleLike(userID, postID string) (bool, int64, error) {
	post, err := uc.visiblePost(postID)
	if err != nil {
		return false, 0, err
	}

	if !permission.CanVote(post.AuthorID == userID) {
		return false, 0, apperr.Authorization("you cannot vote on your own post")
	}

	hasLike, err := uc.interactionRepo.HasLike(userID, postID)
	if err != nil {
		return false, 0, apperr.Storage(err)
	}

	var liked bool
	if hasLike {
		if err := uc.interactionRepo.DeleteLike(userID, postID); err != nil {
			return false, 0, apperr.Storage(err)
		}
		liked = false
	} else {
		// The unique index makes this race-safe: if a concurrent
		// request already inserted the row, created is false and the
		// like simply stands.
		if _, err := uc.interactionRepo.CreateLike(userID, postID); err != nil {
			return false, 0, apperr.Storage(err)
		}
		liked = true
	}

	likes, err := uc.interactionRepo.CountLikes(postID)
	if err != nil {
		return false, 0, apperr.Storage(err)
	}

	uc.cacheLikeCount(postID, likes)
	return liked, likes, nil
}

func (uc *interactionUseCase) RecordRating(userID, postID string, value int) (float64, error) {
	if value < 1 || value > 5 {
		return 0, apperr.Validation("rating must be between 1 and 5")
	}

	if _, err := uc.visiblePost(postID); err != nil {
		return 0, err
	}

	if err := uc.interactionRepo.UpsertRating(userID, postID, value); err != nil {
		return 0, apperr.Storage(err)
	}

	avg, err := uc.interactionRepo.AverageRating(postID)
	if err != nil {
		return 0, apperr.Storage(err)
	}

	if err := uc.postRepo.SetRating(postID, avg); err != nil {
		return 0, apperr.Storage(err)
	}
	return avg, nil
}

// GetAggregates derives engagement numbers from current state: views
// from the incrementally maintained counter, likes and rating always
// recomputed from ledger rows.
func (uc *interactionUseCase) GetAggregates(postID string) (*entity.Aggregates, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}

	likes, err := uc.interactionRepo.CountLikes(postID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	avg, err := uc.interactionRepo.AverageRating(postID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &entity.Aggregates{
		Views:     post.Views,
		Likes:     likes,
		AvgRating: avg,
	}, nil
}

func (uc *interactionUseCase) PostInteractions(postID string, kind entity.InteractionKind) ([]*entity.Interaction, *persistent.InteractionStats, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, nil, storeErr(err, "post not found")
	}

	interactions, err := uc.interactionRepo.ListForPost(postID, kind)
	if err != nil {
		return nil, nil, apperr.Storage(err)
	}

	stats, err := uc.interactionRepo.StatsForPost(postID)
	if err != nil {
		return nil, nil, apperr.Storage(err)
	}

	return interactions, stats, nil
}

func (uc *interactionUseCase) visiblePost(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}
	if post.IsDeleted {
		return nil, apperr.NotFound("post not found")
	}
	return post, nil
}

// cacheLikeCount keeps a hot, non-authoritative counter for read paths;
// rows stay the source of truth.
func (uc *interactionUseCase) cacheLikeCount(postID string, likes int64) {
	if uc.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := fmt.Sprintf("post:likes:%s", postID)
	if err := uc.redisClient.Set(ctx, key, likes, time.Hour).Err(); err != nil {
		uc.logger.Warn("Failed to cache like count for post %s: %v", postID, err)
	}
}
