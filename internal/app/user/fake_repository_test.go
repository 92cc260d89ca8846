package user

import (
	"context"
	"sync"
	"time"
)

// memoryRepository keeps plaintext passwords; hashing is the gorm
// repository's concern and is tested there.
type memoryRepository struct {
	mu    sync.Mutex
	users map[string]User
	calls map[string]int

	err          error
	raceOnInsert bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		users: make(map[string]User),
		calls: make(map[string]int),
	}
}

func (m *memoryRepository) count(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *memoryRepository) UserExists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["UserExists"]++
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *memoryRepository) InsertUser(_ context.Context, id, rawPassword, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["InsertUser"]++
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.users[id]; ok || m.raceOnInsert {
		return false, ErrDuplicateID
	}
	m.users[id] = User{ID: id, Password: rawPassword, Email: email, CreatedAt: time.Now().UTC()}
	return true, nil
}

func (m *memoryRepository) VerifyLogin(_ context.Context, id, rawPassword string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["VerifyLogin"]++
	if m.err != nil {
		return false, m.err
	}
	u, ok := m.users[id]
	return ok && u.Password == rawPassword, nil
}

func (m *memoryRepository) GetUser(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
