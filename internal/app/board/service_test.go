package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"boardapi/internal/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (Service, *memoryRepository) {
	repo := newMemoryRepository()
	return NewService(repo, zap.NewNop()), repo
}

func requireFailure(t *testing.T, res result.Result, kind result.Kind) result.Failure {
	t.Helper()
	f, ok := res.(result.Failure)
	require.True(t, ok, "expected failure, got %#v", res)
	assert.Equal(t, kind, f.Kind)
	return f
}

func TestCreate_ThenGet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res := svc.Create(ctx, "Hello", "World", strPtr("alice"))

	require.True(t, res.OK())
	id, ok := res.(result.Success).GeneratedID()
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	b := svc.Get(ctx, 1)
	require.NotNil(t, b)
	assert.Equal(t, "Hello", b.Title)
	assert.Equal(t, "World", b.Content)
	require.NotNil(t, b.OwnerID)
	assert.Equal(t, "alice", *b.OwnerID)
}

func TestCreate_TrimsBeforePersisting(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res := svc.Create(ctx, "  Title  ", "\n body \t", nil)
	require.True(t, res.OK())

	id, _ := res.(result.Success).GeneratedID()
	b := svc.Get(ctx, id)
	require.NotNil(t, b)
	assert.Equal(t, "Title", b.Title)
	assert.Equal(t, "body", b.Content)
	assert.Nil(t, b.OwnerID)
}

func TestCreate_Validation(t *testing.T) {
	long := strings.Repeat("x", MaxTitleLength+1)
	tests := []struct {
		name    string
		title   string
		content string
		msg     string
	}{
		{"empty title", "", "World", msgRequired},
		{"blank title", "   ", "World", msgRequired},
		{"blank content", "Hello", " \t\n", msgRequired},
		{"title too long", long, "World", msgTitleTooLong},
		{"title too long, blank content", long, "  ", msgRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			f := requireFailure(t, svc.Create(context.Background(), tt.title, tt.content, strPtr("alice")), result.Validation)
			assert.Equal(t, tt.msg, f.Message)
			assert.Zero(t, repo.count("InsertBoard"), "no row persisted")
		})
	}
}

func TestCreate_TitleLengthCountsCharacters(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	exact := strings.Repeat("가", MaxTitleLength)
	assert.True(t, svc.Create(ctx, "  "+exact+"  ", "c", nil).OK())

	requireFailure(t, svc.Create(ctx, exact+"나", "c", nil), result.Validation)
}

func TestCreate_StorageFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.rejectNext = true

	f := requireFailure(t, svc.Create(context.Background(), "T", "C", nil), result.Storage)
	assert.Equal(t, msgCreateFailed, f.Message)

	repo.err = errors.New("connection reset")
	requireFailure(t, svc.Create(context.Background(), "T", "C", nil), result.Storage)
}

func TestGet_NonPositiveIDSkipsStorage(t *testing.T) {
	svc, repo := newTestService()

	assert.Nil(t, svc.Get(context.Background(), 0))
	assert.Nil(t, svc.Get(context.Background(), -3))
	assert.Zero(t, repo.count("GetBoard"))
}

func TestGet_StorageErrorIsAbsent(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 1, Title: "T", Content: "C"})
	repo.err = errors.New("down")

	assert.Nil(t, svc.Get(context.Background(), 1))
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	f := requireFailure(t, svc.Update(context.Background(), 999, "T", "C", strPtr("alice")), result.NotFound)
	assert.Equal(t, msgNotFound, f.Message)
}

func TestUpdate_InvalidID(t *testing.T) {
	svc, repo := newTestService()

	requireFailure(t, svc.Update(context.Background(), 0, "T", "C", nil), result.Validation)
	assert.Zero(t, repo.count("GetBoard"))
}

func TestUpdate_AuthorizationBeforeValidation(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 5, Title: "T", Content: "C", OwnerID: strPtr("alice")})

	f := requireFailure(t, svc.Update(context.Background(), 5, "", "", strPtr("bob")), result.Unauthorized)
	assert.Equal(t, msgForbidden, f.Message)
	assert.Zero(t, repo.count("UpdateBoard"))
}

func TestUpdate_NotFoundBeforeValidation(t *testing.T) {
	svc, _ := newTestService()

	requireFailure(t, svc.Update(context.Background(), 42, "", "", nil), result.NotFound)
}

func TestUpdate_OwnerSucceedsAndOwnerIsKept(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 5, Title: "T", Content: "C", OwnerID: strPtr("alice")})
	ctx := context.Background()

	res := svc.Update(ctx, 5, " New ", " Body ", strPtr("alice"))
	require.True(t, res.OK())
	assert.Equal(t, msgUpdated, res.Msg())
	assert.Nil(t, res.(result.Success).Data)

	b := svc.Get(ctx, 5)
	require.NotNil(t, b)
	assert.Equal(t, "New", b.Title)
	assert.Equal(t, "Body", b.Content)
	assert.Equal(t, "alice", *b.OwnerID)
}

func TestUpdate_UnownedBoardIsOpen(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 2, Title: "T", Content: "C"})

	assert.True(t, svc.Update(context.Background(), 2, "A", "B", nil).OK())
	assert.True(t, svc.Update(context.Background(), 2, "A", "B", strPtr("bob")).OK())
}

func TestUpdate_ValidationAfterAuthorization(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 5, Title: "T", Content: "C", OwnerID: strPtr("alice")})

	requireFailure(t, svc.Update(context.Background(), 5, "", "C", strPtr("alice")), result.Validation)
	assert.Zero(t, repo.count("UpdateBoard"))
}

func TestDelete_NonOwnerRejected(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 5, Title: "T", Content: "C", OwnerID: strPtr("alice")})
	ctx := context.Background()

	requireFailure(t, svc.Delete(ctx, 5, strPtr("bob")), result.Unauthorized)
	requireFailure(t, svc.Delete(ctx, 5, nil), result.Unauthorized)
	assert.NotNil(t, svc.Get(ctx, 5), "board still retrievable")
	assert.Zero(t, repo.count("DeleteBoard"))
}

func TestDelete_Owner(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 5, Title: "T", Content: "C", OwnerID: strPtr("alice")})
	ctx := context.Background()

	res := svc.Delete(ctx, 5, strPtr("alice"))
	require.True(t, res.OK())
	assert.Equal(t, msgDeleted, res.Msg())
	assert.Nil(t, svc.Get(ctx, 5))

	requireFailure(t, svc.Delete(ctx, 5, strPtr("alice")), result.NotFound)
}

func TestDelete_StorageError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("down")

	requireFailure(t, svc.Delete(context.Background(), 5, nil), result.Storage)
}

func TestList_NewestFirstAndClamped(t *testing.T) {
	svc, repo := newTestService()
	for i := 1; i <= 12; i++ {
		repo.seed(Board{ID: int64(i), Title: "T", Content: "C"})
	}
	ctx := context.Background()

	first := svc.List(ctx, 0, 0)
	require.Len(t, first, 10)
	assert.Equal(t, int64(12), first[0].ID)
	assert.Equal(t, int64(3), first[9].ID)

	second := svc.List(ctx, 2, 10)
	require.Len(t, second, 2)
	assert.Equal(t, int64(2), second[0].ID)

	assert.Empty(t, svc.List(ctx, 50, 10))
	assert.Len(t, svc.List(ctx, 1, 1000), 12)
}

func TestList_StorageErrorIsEmpty(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("down")

	boards := svc.List(context.Background(), 1, 10)
	assert.NotNil(t, boards)
	assert.Empty(t, boards)
}

func TestListPage(t *testing.T) {
	svc, repo := newTestService()
	for i := 1; i <= 22; i++ {
		repo.seed(Board{ID: int64(i), Title: "T", Content: "C"})
	}

	page := svc.ListPage(context.Background(), 3, 10)

	require.Len(t, page.Boards, 2)
	assert.Equal(t, int64(2), page.Boards[0].ID)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 1, page.Pagination.StartPage)
	assert.Equal(t, 3, page.Pagination.EndPage)
	assert.Equal(t, 20, page.Pagination.Offset)

	past := svc.ListPage(context.Background(), 99, 10)
	assert.Equal(t, 3, past.Pagination.Page)
	assert.Len(t, past.Boards, 2)
}

func TestListPage_StorageError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("down")

	page := svc.ListPage(context.Background(), 1, 10)
	assert.Empty(t, page.Boards)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

// Concurrent callers race on the same board through the gateway; exactly
// one delete may win and every losing write reports not found.
func TestConcurrentMutations(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(Board{ID: 1, Title: "T", Content: "C", OwnerID: strPtr("alice")})
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	deletes := 0

	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			res := svc.Update(ctx, 1, "New", "Body", strPtr("alice"))
			if !res.OK() {
				k, _ := result.KindOf(res)
				assert.Equal(t, result.NotFound, k)
			}
		}()
		go func() {
			defer wg.Done()
			if svc.Delete(ctx, 1, strPtr("alice")).OK() {
				mu.Lock()
				deletes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, deletes)
	assert.Nil(t, svc.Get(ctx, 1))
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	const workers = 32
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := svc.Create(ctx, "T", "C", nil)
			id, _ := res.(result.Success).GeneratedID()
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

// A board removed behind a stale cache entry passes the existence check,
// but the write touches no row and must still read as not found.
func TestUpdateAndDelete_StaleCacheIsNotFound(t *testing.T) {
	inner := newMemoryRepository()
	inner.seed(Board{ID: 7, Title: "T", Content: "C"})
	cached := NewCachedRepository(inner, newFakeCache(), time.Minute, zap.NewNop())
	svc := NewService(cached, zap.NewNop())
	ctx := context.Background()

	require.NotNil(t, svc.Get(ctx, 7))
	ok, err := inner.DeleteBoard(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)

	f := requireFailure(t, svc.Update(ctx, 7, "New", "Body", nil), result.NotFound)
	assert.Equal(t, msgNotFound, f.Message)

	require.NotNil(t, svc.Get(ctx, 7), "stale entry still cached")
	f = requireFailure(t, svc.Delete(ctx, 7, nil), result.NotFound)
	assert.Equal(t, msgNotFound, f.Message)
}
