package board

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	cacheListPattern = "boards:list:*"
	cacheCountKey    = "boards:count"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// cachedRepository serves reads from Cache and invalidates on every
// successful write. Cache errors are logged and the call falls through to
// the wrapped repository.
type cachedRepository struct {
	next   Repository
	cache  Cache
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger *zap.Logger) Repository {
	return &cachedRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

func listKey(limit, offset int) string {
	return fmt.Sprintf("boards:list:%d:%d", limit, offset)
}

func itemKey(id int64) string {
	return fmt.Sprintf("boards:item:%d", id)
}

func (r *cachedRepository) ListBoards(ctx context.Context, limit, offset int) ([]*Board, error) {
	key := listKey(limit, offset)
	var boards []*Board
	if r.lookup(ctx, key, &boards) {
		return boards, nil
	}

	boards, err := r.next.ListBoards(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, boards)
	return boards, nil
}

func (r *cachedRepository) GetBoard(ctx context.Context, id int64) (*Board, error) {
	key := itemKey(id)
	var board Board
	if r.lookup(ctx, key, &board) {
		return &board, nil
	}

	found, err := r.next.GetBoard(ctx, id)
	if err != nil || found == nil {
		return found, err
	}
	r.store(ctx, key, found)
	return found, nil
}

func (r *cachedRepository) CountBoards(ctx context.Context) (int64, error) {
	var count int64
	if r.lookup(ctx, cacheCountKey, &count) {
		return count, nil
	}

	count, err := r.next.CountBoards(ctx)
	if err != nil {
		return 0, err
	}
	r.store(ctx, cacheCountKey, count)
	return count, nil
}

func (r *cachedRepository) InsertBoard(ctx context.Context, title, content string, ownerID *string) (int64, error) {
	id, err := r.next.InsertBoard(ctx, title, content, ownerID)
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx, cacheCountKey)
	return id, nil
}

func (r *cachedRepository) UpdateBoard(ctx context.Context, id int64, title, content string) (bool, error) {
	ok, err := r.next.UpdateBoard(ctx, id, title, content)
	if err != nil || !ok {
		return ok, err
	}
	r.invalidate(ctx, itemKey(id))
	return true, nil
}

func (r *cachedRepository) DeleteBoard(ctx context.Context, id int64) (bool, error) {
	ok, err := r.next.DeleteBoard(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	r.invalidate(ctx, itemKey(id), cacheCountKey)
	return true, nil
}

func (r *cachedRepository) lookup(ctx context.Context, key string, dst any) bool {
	hit, err := r.cache.GetJSON(ctx, key, dst)
	if err != nil {
		r.logger.Warnw("Board cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (r *cachedRepository) store(ctx context.Context, key string, value any) {
	if err := r.cache.SetJSON(ctx, key, value, r.ttl); err != nil {
		r.logger.Warnw("Board cache write failed", "key", key, "error", err)
	}
}

// invalidate drops the given keys and every cached list page.
func (r *cachedRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.logger.Warnw("Board cache delete failed", "keys", keys, "error", err)
	}
	if err := r.cache.DeleteByPattern(ctx, cacheListPattern); err != nil {
		r.logger.Warnw("Board cache list invalidation failed", "error", err)
	}
}
