package board

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryRepository is an in-memory Repository. Each method holds the lock
// for its whole duration, so every call is atomic like a single statement.
type memoryRepository struct {
	mu     sync.Mutex
	boards map[int64]Board
	nextID int64
	calls  map[string]int

	err        error
	rejectNext bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		boards: make(map[int64]Board),
		calls:  make(map[string]int),
	}
}

func (m *memoryRepository) seed(b Board) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boards[b.ID] = b
	if b.ID > m.nextID {
		m.nextID = b.ID
	}
}

func (m *memoryRepository) count(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *memoryRepository) ListBoards(_ context.Context, limit, offset int) ([]*Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["ListBoards"]++
	if m.err != nil {
		return nil, m.err
	}

	ids := make([]int64, 0, len(m.boards))
	for id := range m.boards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := []*Board{}
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		b := m.boards[ids[i]]
		out = append(out, &b)
	}
	return out, nil
}

func (m *memoryRepository) GetBoard(_ context.Context, id int64) (*Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["GetBoard"]++
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.boards[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *memoryRepository) CountBoards(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["CountBoards"]++
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.boards)), nil
}

func (m *memoryRepository) InsertBoard(_ context.Context, title, content string, ownerID *string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["InsertBoard"]++
	if m.err != nil {
		return 0, m.err
	}
	if m.rejectNext {
		m.rejectNext = false
		return 0, ErrNotPersisted
	}
	m.nextID++
	m.boards[m.nextID] = Board{
		ID:        m.nextID,
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	return m.nextID, nil
}

func (m *memoryRepository) UpdateBoard(_ context.Context, id int64, title, content string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["UpdateBoard"]++
	if m.err != nil {
		return false, m.err
	}
	b, ok := m.boards[id]
	if !ok {
		return false, nil
	}
	b.Title = title
	b.Content = content
	m.boards[id] = b
	return true, nil
}

func (m *memoryRepository) DeleteBoard(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["DeleteBoard"]++
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.boards[id]; !ok {
		return false, nil
	}
	delete(m.boards, id)
	return true, nil
}
