package session

import (
	"errors"
	"net/http"

	"boardapi/internal/middleware"
	"boardapi/internal/result"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	GetSession(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger.Sugar()}
}

// @Summary Current session
// @Tags Session
// @Produce json
// @Param X-Session-Key header string true "Session key"
// @Success 200 {object} result.Response{data=SessionResponse}
// @Failure 404 {object} result.Response
// @Router /session [get]
func (h *handler) GetSession(c *gin.Context) {
	sess, err := h.service.GetSession(c.Request.Context(), middleware.SessionKey(c))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, result.ToResponse(result.Fail(result.NotFound, "session not found")))
		return
	}
	if err != nil {
		h.logger.Errorw("GetSession: lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, result.ToResponse(result.Fail(result.Storage, "database error")))
		return
	}

	c.JSON(http.StatusOK, result.ToResponse(result.OKWithData("", SessionResponse{
		UserID:    sess.UserID,
		StartedAt: sess.StartedAt,
		ExpiresAt: sess.ExpiresAt,
	})))
}
