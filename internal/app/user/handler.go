package user

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"boardapi/internal/app/session"
	"boardapi/internal/middleware"
	"boardapi/internal/result"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	service    Service
	sessionSvc session.Service
	logger     *zap.SugaredLogger
}

func NewHandler(service Service, sessionSvc session.Service, logger *zap.Logger) Handler {
	return &handler{
		service:    service,
		sessionSvc: sessionSvc,
		logger:     logger.Sugar(),
	}
}

// @Summary Register
// @Description Creates an account and starts a session for it
// @Tags User
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Account"
// @Success 201 {object} result.Response{data=AuthResponse}
// @Failure 400 {object} result.Response
// @Failure 409 {object} result.Response
// @Router /user/register [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res := h.service.Register(c.Request.Context(), deref(req.ID), deref(req.Password), deref(req.Email))
	if !res.OK() {
		c.JSON(result.Status(res, true), result.ToResponse(res))
		return
	}
	h.startSession(c, res, strings.TrimSpace(deref(req.ID)), http.StatusCreated)
}

// @Summary Login
// @Tags User
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} result.Response{data=AuthResponse}
// @Failure 400 {object} result.Response
// @Failure 401 {object} result.Response
// @Router /user/login [post]
func (h *handler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res := h.service.Login(c.Request.Context(), deref(req.ID), deref(req.Password))
	if !res.OK() {
		status := result.Status(res, false)
		if kind, _ := result.KindOf(res); kind == result.Unauthorized {
			status = http.StatusUnauthorized
		}
		c.JSON(status, result.ToResponse(res))
		return
	}
	h.startSession(c, res, strings.TrimSpace(deref(req.ID)), http.StatusOK)
}

// @Summary Logout
// @Tags User
// @Produce json
// @Param X-Session-Key header string true "Session key"
// @Success 200 {object} result.Response
// @Failure 400 {object} result.Response
// @Failure 404 {object} result.Response
// @Router /user/logout [post]
func (h *handler) Logout(c *gin.Context) {
	key := middleware.SessionKey(c)
	if key == "" {
		c.JSON(http.StatusBadRequest, result.ToResponse(result.Fail(result.Validation, "session key is required")))
		return
	}

	err := h.sessionSvc.EndSession(c.Request.Context(), key)
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, result.ToResponse(result.Fail(result.NotFound, "session not found")))
		return
	}
	if err != nil {
		h.logger.Errorw("Logout: failed to end session", "error", err)
		c.JSON(http.StatusInternalServerError, result.ToResponse(result.Fail(result.Storage, msgStorageError)))
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, result.ToResponse(result.OK("logged out")))
}

// @Summary Current user
// @Tags User
// @Produce json
// @Param X-Session-Key header string true "Session key"
// @Success 200 {object} result.Response{data=MeResponse}
// @Failure 401 {object} result.Response
// @Router /user/me [get]
func (h *handler) Me(c *gin.Context) {
	caller := middleware.CallerID(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, result.ToResponse(result.Fail(result.Unauthorized, "login required")))
		return
	}

	u := h.service.Profile(c.Request.Context(), *caller)
	if u == nil {
		c.JSON(http.StatusNotFound, result.ToResponse(result.Fail(result.NotFound, "user not found")))
		return
	}

	resp := MeResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
	if sess, err := h.sessionSvc.GetSession(c.Request.Context(), middleware.SessionKey(c)); err == nil {
		resp.SessionStartedAt = sess.StartedAt
		resp.SessionExpiresAt = sess.ExpiresAt
	}
	c.JSON(http.StatusOK, result.ToResponse(result.OKWithData("", resp)))
}

func (h *handler) startSession(c *gin.Context, res result.Result, userID string, status int) {
	sess, err := h.sessionSvc.CreateSession(c.Request.Context(), userID, c.GetHeader("User-Agent"))
	if err != nil {
		h.logger.Errorw("failed to start session", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, result.ToResponse(result.Fail(result.Storage, "failed to create session")))
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetCookie(middleware.SessionCookie, sess.SessionKey, maxAge, "/", "", false, true)
	c.JSON(status, result.ToResponse(result.OKWithData(res.Msg(), AuthResponse{
		UserID:     userID,
		SessionKey: sess.SessionKey,
		ExpiresAt:  sess.ExpiresAt,
	})))
}

func bindJSON(c *gin.Context, dst any) bool {
	if c.ContentType() != gin.MIMEJSON {
		c.JSON(http.StatusBadRequest, result.ToResponse(result.Fail(result.Validation, "Content-Type must be application/json")))
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, result.ToResponse(result.Fail(result.Validation, "malformed JSON body")))
		return false
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
