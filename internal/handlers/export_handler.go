package handlers

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/export"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the request history of a channel as a spreadsheet.
type ExportHandler struct {
	admin  contract.AdminService
	token  string
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewExportHandler(admin contract.AdminService, token string, loc *time.Location, logger *zap.Logger) *ExportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ExportHandler{
		admin:  admin,
		token:  token,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

// RequireToken checks the bearer token. With no token configured every request is refused.
func (h *ExportHandler) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if h.token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (h *ExportHandler) DownloadRequests(c *gin.Context) {
	channelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel id"})
		return
	}

	channel, err := h.admin.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		h.abortWithError(c, channelID, err)
		return
	}

	requests, err := h.admin.ExportAllRequests(c.Request.Context(), channelID)
	if err != nil {
		h.abortWithError(c, channelID, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteRequests(&buf, channel, requests, h.loc); err != nil {
		h.abortWithError(c, channelID, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(channelID, h.now().In(h.loc))+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) abortWithError(c *gin.Context, channelID int64, err error) {
	if errors.Is(err, domain.ErrChannelNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.logger.Error("failed to export requests", zap.Int64("channel_id", channelID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
}
