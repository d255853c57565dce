package usecase

import (
	"strings"
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/permission"
	"talenthub/internal/repo/persistent"
	"talenthub/pkg/apperr"
	"talenthub/pkg/logger"
	"talenthub/pkg/queue"
	"talenthub/pkg/s3"
)

// Dashboard is the moderation overview for the admin console.
type Dashboard struct {
	TotalPosts    int64 `json:"totalPosts"`
	PendingPosts  int64 `json:"pendingPosts"`
	ApprovedPosts int64 `json:"approvedPosts"`
	RejectedPosts int64 `json:"rejectedPosts"`
	DeletedPosts  int64 `json:"deletedPosts"`
	TotalCreators int64 `json:"totalCreators"`
}

type ModerationUseCase interface {
	PendingPosts(limit, offset int) ([]*entity.Post, int64, error)
	Approve(postID string) (*entity.Post, error)
	Reject(postID, reason string) (*entity.Post, error)
	GarbageBin(postType entity.PostType, limit, offset int) ([]*entity.Post, int64, error)
	Restore(postID string) (*entity.Post, error)
	Purge(postID string) error
	GetDashboard() (*Dashboard, error)
	UpdateUserRole(userID, role string) (*entity.User, error)
}

type moderationUseCase struct {
	postRepo    persistent.PostRepository
	userRepo    persistent.UserRepository
	s3Client    *s3.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewModerationUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	s3Client *s3.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) ModerationUseCase {
	return &moderationUseCase{
		postRepo:    postRepo,
		userRepo:    userRepo,
		s3Client:    s3Client,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *moderationUseCase) PendingPosts(limit, offset int) ([]*entity.Post, int64, error) {
	posts, total, err := uc.postRepo.List(persistent.PostFilter{Status: entity.StatusPending}, limit, offset)
	if err != nil {
		return nil, 0, apperr.Storage(err)
	}
	return posts, total, nil
}

// Approve moves a post out of moderation. The transition is guarded on
// the stored status, so two racing approvals resolve to one winner and
// one conflict.
func (uc *moderationUseCase) Approve(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}

	changed, err := uc.postRepo.TransitionStatus(postID, entity.StatusPending, entity.StatusApproved, nil)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !changed {
		return nil, apperr.Conflict("cannot approve a post with status: %s", post.Status)
	}

	uc.notify("post_approved", postID, post.AuthorID)

	post, err = uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}
	return post, nil
}

// Reject requires a reason and parks the post in the garbage bin while
// keeping its rejected status.
func (uc *moderationUseCase) Reject(postID, reason string) (*entity.Post, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperr.Validation("rejection reason is required")
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}

	now := time.Now()
	changed, err := uc.postRepo.TransitionStatus(postID, entity.StatusPending, entity.StatusRejected, map[string]interface{}{
		"is_deleted":    true,
		"deleted_at":    &now,
		"delete_reason": reason,
	})
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !changed {
		return nil, apperr.Conflict("cannot reject a post with status: %s", post.Status)
	}

	uc.notify("post_rejected", postID, post.AuthorID)

	post, err = uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}
	return post, nil
}

func (uc *moderationUseCase) GarbageBin(postType entity.PostType, limit, offset int) ([]*entity.Post, int64, error) {
	posts, total, err := uc.postRepo.List(persistent.PostFilter{Type: postType, DeletedOnly: true}, limit, offset)
	if err != nil {
		return nil, 0, apperr.Storage(err)
	}
	return posts, total, nil
}

// Restore clears the deleted flag but keeps the underlying status: a
// restored rejected post stays rejected, it just becomes visible again.
func (uc *moderationUseCase) Restore(postID string) (*entity.Post, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, storeErr(err, "post not found")
	}

	restored, err := uc.postRepo.Restore(postID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !restored {
		return nil, apperr.Conflict("post is not in the garbage bin")
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}
	return post, nil
}

func (uc *moderationUseCase) Purge(postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return storeErr(err, "post not found")
	}
	if !post.IsDeleted {
		return apperr.Conflict("post is not in the garbage bin")
	}

	if err := uc.postRepo.Purge(postID); err != nil {
		uc.logger.Error("Failed to purge post %s: %v", postID, err)
		return apperr.Storage(err)
	}

	// The database rows are gone; orphaned objects in the media bucket
	// are only a cost problem, so deletion failures are logged, not
	// surfaced.
	if uc.s3Client != nil {
		for _, m := range post.Media {
			if err := uc.s3Client.DeleteByPath(m.FilePath); err != nil {
				uc.logger.Warn("Failed to delete media %s for purged post %s: %v", m.FilePath, postID, err)
			}
		}
	}
	return nil
}

func (uc *moderationUseCase) GetDashboard() (*Dashboard, error) {
	counts, err := uc.postRepo.CountByStatus()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	creators, err := uc.userRepo.CountByRole(entity.RoleCreator)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &Dashboard{
		TotalPosts:    counts.Total,
		PendingPosts:  counts.Pending,
		ApprovedPosts: counts.Approved,
		RejectedPosts: counts.Rejected,
		DeletedPosts:  counts.Deleted,
		TotalCreators: creators,
	}, nil
}

func (uc *moderationUseCase) UpdateUserRole(userID, role string) (*entity.User, error) {
	if permission.NormalizeRole(role) != entity.UserRole(role) {
		return nil, apperr.Validation("invalid role: %s", role)
	}

	if err := uc.userRepo.UpdateRole(userID, entity.UserRole(role)); err != nil {
		return nil, storeErr(err, "user not found")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}
	user.Password = ""
	return user, nil
}

func (uc *moderationUseCase) notify(eventType, postID, authorID string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		task := map[string]interface{}{
			"type":      eventType,
			"post_id":   postID,
			"author_id": authorID,
			"priority":  4,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish %s task for post %s: %v", eventType, postID, err)
		}
	}()
}
