package http

import (
	"talenthub/pkg/apperr"
	"talenthub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError translates a classified error into the wire contract:
// the matching status code and a {"error": message} body. Internal
// causes are logged, never serialized.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status := apperr.StatusCode(err)
	if status >= 500 && log != nil {
		log.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
