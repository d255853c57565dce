package http

import (
	"net/http"
	"strconv"

	"talenthub/internal/entity"
	"talenthub/internal/permission"
	"talenthub/internal/repo/persistent"
	"talenthub/internal/usecase"
	"talenthub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase        usecase.PostUseCase
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewPostHandler(
	postUseCase usecase.PostUseCase,
	interactionUseCase usecase.InteractionUseCase,
	logger *logger.Logger,
) *PostHandler {
	return &PostHandler{
		postUseCase:        postUseCase,
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Duration    *string `json:"duration"`
}

type DeletePostRequest struct {
	Reason string `json:"reason"`
}

type InteractRequest struct {
	Type  string `json:"type" binding:"required"`
	Value int    `json:"value"`
}

// ListPosts godoc
// @Summary      List posts with optional filters
// @Tags         posts
// @Produce      json
// @Param        type    query  string  false  "Portal type (video, audio, blog)"
// @Param        status  query  string  false  "Moderation status"
// @Param        author  query  string  false  "Author id"
// @Param        limit   query  int     false  "Page size"
// @Param        offset  query  int     false  "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, offset := pagination(c)

	filter := persistent.PostFilter{
		Type:     entity.PostType(c.Query("type")),
		Status:   entity.PostStatus(c.Query("status")),
		AuthorID: c.Query("author"),
	}

	posts, total, err := h.postUseCase.ListPosts(filter, c.GetString("user_id"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total})
}

// GetPost godoc
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	role := permission.NormalizeRole(c.GetString("role"))

	post, err := h.postUseCase.GetPost(c.Param("id"), c.GetString("user_id"), role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        type         formData  string  true   "Portal type (video, audio, blog)"
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        media        formData  file    false  "Media files"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	in, files, err := h.bindCreate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, f := range files {
		defer f.close()
	}

	uploads := make([]usecase.MediaUpload, 0, len(files))
	for _, f := range files {
		uploads = append(uploads, f.MediaUpload)
	}

	role := permission.NormalizeRole(c.GetString("role"))
	post, err := h.postUseCase.CreatePost(c.GetString("user_id"), role, in, uploads)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string             true  "Post id"
// @Param        request  body  UpdatePostRequest  true  "Fields to change"
// @Success      200  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := permission.NormalizeRole(c.GetString("role"))
	post, err := h.postUseCase.UpdatePost(c.Param("id"), c.GetString("user_id"), role, usecase.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost moves a post to the garbage bin. The body is optional; a
// reason is only meaningful when an admin removes someone else's post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	var req DeletePostRequest
	_ = c.ShouldBindJSON(&req)

	role := permission.NormalizeRole(c.GetString("role"))
	if err := h.postUseCase.SoftDelete(c.Param("id"), c.GetString("user_id"), role, req.Reason); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post moved to garbage bin"})
}

// Interact godoc
// @Summary      Record a view, toggle a like, or rate a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string           true  "Post id"
// @Param        request  body  InteractRequest  true  "Interaction"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts/{id}/interact [post]
func (h *PostHandler) Interact(c *gin.Context) {
	var req InteractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	postID := c.Param("id")

	switch entity.InteractionKind(req.Type) {
	case entity.InteractionView:
		views, err := h.interactionUseCase.RecordView(userID, postID)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"type": "view", "views": views})

	case entity.InteractionLike:
		liked, likes, err := h.interactionUseCase.ToggleLike(userID, postID)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"type": "like", "liked": liked, "likes": likes})

	case entity.InteractionRating:
		avg, err := h.interactionUseCase.RecordRating(userID, postID, req.Value)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"type": "rating", "value": req.Value, "averageRating": avg})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interaction type: " + req.Type})
	}
}

// PostInteractions godoc
// @Summary      List interactions and aggregate stats for a post
// @Tags         posts
// @Produce      json
// @Param        id    path   string  true   "Post id"
// @Param        type  query  string  false  "Filter by interaction kind"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/interactions [get]
func (h *PostHandler) PostInteractions(c *gin.Context) {
	postID := c.Param("id")

	interactions, stats, err := h.interactionUseCase.PostInteractions(
		postID, entity.InteractionKind(c.Query("type")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	aggregates, err := h.interactionUseCase.GetAggregates(postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"interactions": interactions, "stats": stats, "aggregates": aggregates})
}

type boundFile struct {
	usecase.MediaUpload
	close func() error
}

// bindCreate accepts either a multipart form with media files or a
// plain JSON body for blog posts without attachments.
func (h *PostHandler) bindCreate(c *gin.Context) (usecase.CreatePostInput, []boundFile, error) {
	if c.ContentType() == "application/json" {
		var req struct {
			Type        string `json:"type" binding:"required"`
			Title       string `json:"title" binding:"required"`
			Description string `json:"description"`
			Thumbnail   string `json:"thumbnail"`
			Duration    string `json:"duration"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return usecase.CreatePostInput{}, nil, err
		}
		return usecase.CreatePostInput{
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
			Thumbnail:   req.Thumbnail,
			Duration:    req.Duration,
		}, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return usecase.CreatePostInput{}, nil, err
	}

	in := usecase.CreatePostInput{
		Type:        c.PostForm("type"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Thumbnail:   c.PostForm("thumbnail"),
		Duration:    c.PostForm("duration"),
	}

	var files []boundFile
	for _, header := range form.File["media"] {
		f, err := header.Open()
		if err != nil {
			for _, bound := range files {
				bound.close()
			}
			return usecase.CreatePostInput{}, nil, err
		}
		files = append(files, boundFile{
			MediaUpload: usecase.MediaUpload{
				Reader:      f,
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
			},
			close: f.Close,
		})
	}
	return in, files, nil
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
