package board

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"boardapi/internal/pagination"
	"boardapi/internal/result"

	"go.uber.org/zap"
)

const defaultPageSize = 10

const (
	msgCreated      = "board created"
	msgUpdated      = "board updated"
	msgDeleted      = "board deleted"
	msgRequired     = "title and content are required"
	msgInvalidID    = "invalid board id"
	msgNotFound     = "board not found"
	msgForbidden    = "you are not allowed to modify this board"
	msgCreateFailed = "failed to create board"
	msgStorageError = "database error"
)

var msgTitleTooLong = fmt.Sprintf("title must be at most %d characters", MaxTitleLength)

type Service interface {
	List(ctx context.Context, page, size int) []*Board
	ListPage(ctx context.Context, page, size int) *BoardListResponse
	Get(ctx context.Context, id int64) *Board
	Create(ctx context.Context, title, content string, ownerID *string) result.Result
	Update(ctx context.Context, id int64, title, content string, callerID *string) result.Result
	Delete(ctx context.Context, id int64, callerID *string) result.Result
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.Sugar(),
	}
}

func normalizePaging(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	return page, size
}

func (s *service) List(ctx context.Context, page, size int) []*Board {
	page, size = normalizePaging(page, size)
	p := pagination.Calculate(page, size)

	boards, err := s.repo.ListBoards(ctx, p.Limit, p.Offset)
	if err != nil {
		s.logger.Errorw("List: failed to read boards", "page", page, "size", size, "error", err)
		return []*Board{}
	}
	if boards == nil {
		return []*Board{}
	}
	return boards
}

func (s *service) ListPage(ctx context.Context, page, size int) *BoardListResponse {
	page, size = normalizePaging(page, size)

	total, err := s.repo.CountBoards(ctx)
	if err != nil {
		s.logger.Errorw("ListPage: failed to count boards", "error", err)
		total = 0
	}
	p := pagination.CalculateWithTotal(page, size, total)

	boards, err := s.repo.ListBoards(ctx, p.Limit, p.Offset)
	if err != nil {
		s.logger.Errorw("ListPage: failed to read boards", "page", p.Page, "error", err)
		boards = nil
	}
	if boards == nil {
		boards = []*Board{}
	}
	return &BoardListResponse{Boards: boards, Pagination: p}
}

func (s *service) Get(ctx context.Context, id int64) *Board {
	if id <= 0 {
		return nil
	}
	board, err := s.repo.GetBoard(ctx, id)
	if err != nil {
		s.logger.Errorw("Get: failed to read board", "id", id, "error", err)
		return nil
	}
	return board
}

func (s *service) Create(ctx context.Context, title, content string, ownerID *string) result.Result {
	title, content, failure := validate(title, content)
	if failure != nil {
		return failure
	}

	id, err := s.repo.InsertBoard(ctx, title, content, ownerID)
	if err != nil {
		s.logger.Errorw("Create: insert failed", "owner", ownerID, "error", err)
		return result.Fail(result.Storage, msgCreateFailed)
	}

	s.logger.Infow("Create: board created", "id", id, "owner", ownerID)
	return result.OKWithID(msgCreated, id)
}

// Update checks, in order: id, existence, ownership, then the new fields.
func (s *service) Update(ctx context.Context, id int64, title, content string, callerID *string) result.Result {
	if _, failure := s.loadModifiable(ctx, id, callerID); failure != nil {
		return failure
	}

	title, content, failure := validate(title, content)
	if failure != nil {
		return failure
	}

	ok, err := s.repo.UpdateBoard(ctx, id, title, content)
	if err != nil {
		s.logger.Errorw("Update: update failed", "id", id, "error", err)
		return result.Fail(result.Storage, msgStorageError)
	}
	// Zero rows: the board vanished after the existence check.
	if !ok {
		return result.Fail(result.NotFound, msgNotFound)
	}

	s.logger.Infow("Update: board updated", "id", id, "caller", callerID)
	return result.OK(msgUpdated)
}

func (s *service) Delete(ctx context.Context, id int64, callerID *string) result.Result {
	if _, failure := s.loadModifiable(ctx, id, callerID); failure != nil {
		return failure
	}

	ok, err := s.repo.DeleteBoard(ctx, id)
	if err != nil {
		s.logger.Errorw("Delete: delete failed", "id", id, "error", err)
		return result.Fail(result.Storage, msgStorageError)
	}
	if !ok {
		return result.Fail(result.NotFound, msgNotFound)
	}

	s.logger.Infow("Delete: board deleted", "id", id, "caller", callerID)
	return result.OK(msgDeleted)
}

func (s *service) loadModifiable(ctx context.Context, id int64, callerID *string) (*Board, result.Result) {
	if id <= 0 {
		return nil, result.Fail(result.Validation, msgInvalidID)
	}

	board, err := s.repo.GetBoard(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to load board", "id", id, "error", err)
		return nil, result.Fail(result.Storage, msgStorageError)
	}
	if board == nil {
		return nil, result.Fail(result.NotFound, msgNotFound)
	}
	if !board.ModifiableBy(callerID) {
		s.logger.Warnw("rejected modification by non-owner", "id", id, "caller", callerID)
		return nil, result.Fail(result.Unauthorized, msgForbidden)
	}
	return board, nil
}

// validate trims both fields and returns the trimmed values, or a
// validation failure.
func validate(title, content string) (string, string, result.Result) {
	t := strings.TrimSpace(title)
	c := strings.TrimSpace(content)
	if t == "" || c == "" {
		return "", "", result.Fail(result.Validation, msgRequired)
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return "", "", result.Fail(result.Validation, msgTitleTooLong)
	}
	return t, c, nil
}
