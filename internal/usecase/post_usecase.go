package usecase

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"talenthub/internal/entity"
	"talenthub/internal/permission"
	"talenthub/internal/repo/persistent"
	"talenthub/pkg/apperr"
	"talenthub/pkg/logger"
	"talenthub/pkg/queue"
	"talenthub/pkg/s3"

	"github.com/google/uuid"
)

type CreatePostInput struct {
	Type        string
	Title       string
	Description string
	Thumbnail   string
	Duration    string
}

type UpdatePostInput struct {
	Title       *string
	Description *string
	Thumbnail   *string
	Duration    *string
}

// MediaUpload is one incoming file from a multipart request.
type MediaUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type PostUseCase interface {
	CreatePost(authorID string, role entity.UserRole, in CreatePostInput, files []MediaUpload) (*entity.Post, error)
	GetPost(postID, viewerID string, role entity.UserRole) (*entity.Post, error)
	ListPosts(filter persistent.PostFilter, viewerID string, limit, offset int) ([]*entity.Post, int64, error)
	UpdatePost(postID, actorID string, role entity.UserRole, in UpdatePostInput) (*entity.Post, error)
	SoftDelete(postID, actorID string, role entity.UserRole, reason string) error
}

type postUseCase struct {
	postRepo        persistent.PostRepository
	userRepo        persistent.UserRepository
	interactionRepo persistent.InteractionRepository
	s3Client        *s3.Client
	queueClient     *queue.Client
	logger          *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	interactionRepo persistent.InteractionRepository,
	s3Client *s3.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:        postRepo,
		userRepo:        userRepo,
		interactionRepo: interactionRepo,
		s3Client:        s3Client,
		queueClient:     queueClient,
		logger:          logger,
	}
}

func (uc *postUseCase) CreatePost(authorID string, role entity.UserRole, in CreatePostInput, files []MediaUpload) (*entity.Post, error) {
	if !permission.CanUpload(role) {
		return nil, apperr.Authorization("only creators and admins can create posts")
	}

	postType := entity.PostType(in.Type)
	if !entity.ValidPostType(postType) {
		return nil, apperr.Validation("invalid post type: %s", in.Type)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	if postType != entity.PostTypeBlog && len(files) == 0 {
		return nil, apperr.Validation("a media file is required for %s posts", postType)
	}

	var media []entity.Media
	for _, file := range files {
		key := fmt.Sprintf("posts/%s/%s%s", authorID, uuid.New().String(), filepath.Ext(file.Filename))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		path, err := uc.s3Client.UploadFile(key, file.Reader, contentType)
		if err != nil {
			uc.logger.Error("Failed to upload media: %v", err)
			return nil, apperr.Storage(err)
		}

		media = append(media, entity.Media{
			FilePath: path,
			FileType: contentType,
			FileSize: file.Size,
		})
	}

	// Admins bypass moderation.
	status := entity.StatusPending
	if role == entity.RoleAdmin {
		status = entity.StatusApproved
	}

	post := &entity.Post{
		AuthorID:    authorID,
		Title:       in.Title,
		Description: in.Description,
		Type:        postType,
		Thumbnail:   in.Thumbnail,
		Duration:    in.Duration,
		Status:      status,
		Media:       media,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, apperr.Storage(err)
	}

	if uc.queueClient != nil && status == entity.StatusPending {
		go uc.publishPostEvent("post_submitted", post.ID, post.AuthorID, 5)
	}

	return uc.decorate(post, "")
}

func (uc *postUseCase) GetPost(postID, viewerID string, role entity.UserRole) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}

	// Deleted posts only surface in the admin garbage bin.
	if post.IsDeleted && !permission.CanModerate(role) {
		return nil, apperr.NotFound("post not found")
	}

	// Track a view for authenticated readers. The unique (user, post,
	// kind) row makes the counter increment once per viewer.
	if viewerID != "" {
		created, err := uc.interactionRepo.UpsertView(viewerID, postID)
		if err != nil {
			uc.logger.Warn("Failed to record view for post %s: %v", postID, err)
		} else if created {
			if err := uc.postRepo.IncrementViews(postID); err != nil {
				uc.logger.Warn("Failed to increment views for post %s: %v", postID, err)
			} else {
				post.Views++
			}
		}
	}

	return uc.decorate(post, viewerID)
}

func (uc *postUseCase) ListPosts(filter persistent.PostFilter, viewerID string, limit, offset int) ([]*entity.Post, int64, error) {
	posts, total, err := uc.postRepo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, apperr.Storage(err)
	}

	for i := range posts {
		posts[i], err = uc.decorate(posts[i], viewerID)
		if err != nil {
			return nil, 0, err
		}
	}
	return posts, total, nil
}

func (uc *postUseCase) UpdatePost(postID, actorID string, role entity.UserRole, in UpdatePostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}

	isOwner := post.AuthorID == actorID
	if !permission.CanMutatePost(role, isOwner, post.Status, post.IsDeleted) {
		if isOwner {
			return nil, apperr.Authorization("this post can no longer be edited")
		}
		return nil, apperr.Authorization("you can only edit your own posts")
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, apperr.Validation("title cannot be empty")
		}
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Thumbnail != nil {
		fields["thumbnail"] = *in.Thumbnail
	}
	if in.Duration != nil {
		fields["duration"] = *in.Duration
	}

	if len(fields) > 0 {
		if err := uc.postRepo.UpdateFields(postID, fields); err != nil {
			return nil, storeErr(err, "post not found")
		}
	}

	post, err = uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}
	return uc.decorate(post, actorID)
}

func (uc *postUseCase) SoftDelete(postID, actorID string, role entity.UserRole, reason string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return storeErr(err, "post not found")
	}

	// Owners share the edit rules: once a post is rejected only an
	// admin can move it to or out of the garbage bin.
	isOwner := post.AuthorID == actorID
	if !permission.CanMutatePost(role, isOwner, post.Status, post.IsDeleted) {
		if isOwner {
			return apperr.Authorization("this post can no longer be deleted")
		}
		return apperr.Authorization("you can only delete your own posts")
	}

	deleted, err := uc.postRepo.SoftDelete(postID, reason)
	if err != nil {
		return apperr.Storage(err)
	}
	if !deleted {
		return apperr.Conflict("post is already in the garbage bin")
	}
	return nil
}

// decorate fills in author fields and the viewer-dependent vote state.
func (uc *postUseCase) decorate(post *entity.Post, viewerID string) (*entity.Post, error) {
	author, err := uc.userRepo.GetByID(post.AuthorID)
	if err == nil {
		post.AuthorName = author.Name
		post.AuthorRole = permission.NormalizeRole(string(author.Role))
	}

	likes, err := uc.interactionRepo.CountLikes(post.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	post.Votes = likes

	if viewerID != "" {
		hasVoted, err := uc.interactionRepo.HasLike(viewerID, post.ID)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		post.HasVoted = hasVoted
	}

	return post, nil
}

func (uc *postUseCase) publishPostEvent(eventType, postID, authorID string, priority int) {
	task := map[string]interface{}{
		"type":      eventType,
		"post_id":   postID,
		"author_id": authorID,
		"priority":  priority,
	}

	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish %s task for post %s: %v", eventType, postID, err)
	}
}
