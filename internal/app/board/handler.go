package board

import (
	"net/http"
	"strconv"

	"boardapi/internal/middleware"
	"boardapi/internal/result"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListBoards(c *gin.Context)
	GetBoard(c *gin.Context)
	CreateBoard(c *gin.Context)
	UpdateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List boards
// @Description Newest first, with block pagination for navigation
// @Tags Board
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size (1-100)" default(10)
// @Success 200 {object} result.Response{data=BoardListResponse}
// @Router /board [get]
func (h *handler) ListBoards(c *gin.Context) {
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", defaultPageSize)

	list := h.service.ListPage(c.Request.Context(), page, size)
	c.JSON(http.StatusOK, result.ToResponse(result.OKWithData("", list)))
}

// @Summary Get board
// @Tags Board
// @Produce json
// @Param idx path int true "Board id"
// @Success 200 {object} result.Response{data=Board}
// @Failure 400 {object} result.Response
// @Failure 404 {object} result.Response
// @Router /board/{idx} [get]
func (h *handler) GetBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	board := h.service.Get(c.Request.Context(), id)
	if board == nil {
		c.JSON(http.StatusNotFound, result.ToResponse(result.Fail(result.NotFound, msgNotFound)))
		return
	}
	c.JSON(http.StatusOK, result.ToResponse(result.OKWithData("", board)))
}

// @Summary Create board
// @Description The board is owned by the logged-in caller; anonymous boards stay open to everyone
// @Tags Board
// @Accept json
// @Produce json
// @Param X-Session-Key header string false "Session key"
// @Param body body BoardRequest true "Board"
// @Success 201 {object} result.Response
// @Failure 400 {object} result.Response
// @Router /board [post]
func (h *handler) CreateBoard(c *gin.Context) {
	req, ok := bindBoardRequest(c)
	if !ok {
		return
	}

	res := h.service.Create(c.Request.Context(), deref(req.Title), deref(req.Content), middleware.CallerID(c))
	c.JSON(result.Status(res, true), result.ToResponse(res))
}

// @Summary Update board
// @Tags Board
// @Accept json
// @Produce json
// @Param X-Session-Key header string false "Session key"
// @Param idx path int true "Board id"
// @Param body body BoardRequest true "Board"
// @Success 200 {object} result.Response
// @Failure 400 {object} result.Response
// @Failure 403 {object} result.Response
// @Failure 404 {object} result.Response
// @Router /board/{idx} [put]
func (h *handler) UpdateBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindBoardRequest(c)
	if !ok {
		return
	}

	res := h.service.Update(c.Request.Context(), id, deref(req.Title), deref(req.Content), middleware.CallerID(c))
	c.JSON(result.Status(res, false), result.ToResponse(res))
}

// @Summary Delete board
// @Tags Board
// @Produce json
// @Param X-Session-Key header string false "Session key"
// @Param idx path int true "Board id"
// @Success 200 {object} result.Response
// @Failure 403 {object} result.Response
// @Failure 404 {object} result.Response
// @Router /board/{idx} [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.service.Delete(c.Request.Context(), id, middleware.CallerID(c))
	c.JSON(result.Status(res, false), result.ToResponse(res))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("idx"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.ToResponse(result.Fail(result.Validation, msgInvalidID)))
		return 0, false
	}
	return id, true
}

// bindBoardRequest answers 400 itself when the body is not a JSON object.
func bindBoardRequest(c *gin.Context) (*BoardRequest, bool) {
	if c.ContentType() != gin.MIMEJSON {
		c.JSON(http.StatusBadRequest, result.ToResponse(result.Fail(result.Validation, "Content-Type must be application/json")))
		return nil, false
	}
	var req BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, result.ToResponse(result.Fail(result.Validation, "malformed JSON body")))
		return nil, false
	}
	return &req, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
