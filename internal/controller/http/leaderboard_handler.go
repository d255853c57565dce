package http

import (
	"net/http"

	"talenthub/internal/entity"
	"talenthub/internal/usecase"
	"talenthub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
	logger             *logger.Logger
}

func NewLeaderboardHandler(leaderboardUseCase usecase.LeaderboardUseCase, logger *logger.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

// Global godoc
// @Summary      Global creator leaderboard
// @Tags         leaderboard
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Global(c *gin.Context) {
	limit, offset := pagination(c)

	entries, err := h.leaderboardUseCase.Global(limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// Portal godoc
// @Summary      Leaderboard scoped to one portal type
// @Tags         leaderboard
// @Produce      json
// @Param        type  path  string  true  "Portal type (video, audio, blog)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /leaderboard/portal/{type} [get]
func (h *LeaderboardHandler) Portal(c *gin.Context) {
	limit, offset := pagination(c)

	entries, err := h.leaderboardUseCase.Portal(entity.PostType(c.Param("type")), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// UserRank godoc
// @Summary      One creator's rank and stats
// @Tags         leaderboard
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  entity.LeaderboardEntry
// @Failure      404  {object}  map[string]string
// @Router       /leaderboard/user/{id} [get]
func (h *LeaderboardHandler) UserRank(c *gin.Context) {
	entry, err := h.leaderboardUseCase.UserRank(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Stats godoc
// @Summary      Platform-wide statistics
// @Tags         leaderboard
// @Produce      json
// @Success      200  {object}  entity.PlatformStats
// @Router       /leaderboard/stats [get]
func (h *LeaderboardHandler) Stats(c *gin.Context) {
	stats, err := h.leaderboardUseCase.Stats()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
