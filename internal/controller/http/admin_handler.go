package http

import (
	"net/http"

	"talenthub/internal/entity"
	"talenthub/internal/usecase"
	"talenthub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewAdminHandler(moderationUseCase usecase.ModerationUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// Dashboard godoc
// @Summary      Moderation overview counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.Dashboard
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.moderationUseCase.GetDashboard()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// PendingPosts godoc
// @Summary      List posts awaiting moderation
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/pending-posts [get]
func (h *AdminHandler) PendingPosts(c *gin.Context) {
	limit, offset := pagination(c)

	posts, total, err := h.moderationUseCase.PendingPosts(limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total})
}

// Approve godoc
// @Summary      Approve a pending post
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  entity.Post
// @Failure      409  {object}  map[string]string
// @Router       /admin/posts/{id}/approve [patch]
func (h *AdminHandler) Approve(c *gin.Context) {
	post, err := h.moderationUseCase.Approve(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Reject godoc
// @Summary      Reject a pending post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string         true  "Post id"
// @Param        request  body  RejectRequest  true  "Rejection reason"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/posts/{id}/reject [patch]
func (h *AdminHandler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.moderationUseCase.Reject(c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GarbageBin godoc
// @Summary      List soft-deleted posts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        type  query  string  false  "Portal type filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/garbage-bin [get]
func (h *AdminHandler) GarbageBin(c *gin.Context) {
	limit, offset := pagination(c)

	posts, total, err := h.moderationUseCase.GarbageBin(entity.PostType(c.Query("type")), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total})
}

// Restore godoc
// @Summary      Restore a post from the garbage bin
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  entity.Post
// @Failure      409  {object}  map[string]string
// @Router       /admin/garbage-bin/{id}/restore [put]
func (h *AdminHandler) Restore(c *gin.Context) {
	post, err := h.moderationUseCase.Restore(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Purge godoc
// @Summary      Permanently delete a post and its interaction history
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/garbage-bin/{id}/permanent [delete]
func (h *AdminHandler) Purge(c *gin.Context) {
	if err := h.moderationUseCase.Purge(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post permanently deleted"})
}

// UpdateUserRole godoc
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string             true  "User id"
// @Param        request  body  UpdateRoleRequest  true  "New role"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.moderationUseCase.UpdateUserRole(c.Param("id"), req.Role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
