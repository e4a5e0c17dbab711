package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the HTTP surface. slackHandler may be nil when Slack is not configured.
func NewRouter(slackHandler *SlackHandler, exportHandler *ExportHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if slackHandler != nil {
		router.POST("/slack/commands", slackHandler.HandleSlashCommand)
	}

	if exportHandler != nil {
		channels := router.Group("/channels")
		channels.Use(exportHandler.RequireToken())
		channels.GET("/:id/export.xlsx", exportHandler.DownloadRequests)
	}

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
