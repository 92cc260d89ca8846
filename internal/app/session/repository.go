package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("session not found")

type Repository interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSessionByKey(ctx context.Context, sessionKey string) (*Session, error)
	// EndSession stamps ended_at on a live session. It reports false when
	// no live session has the key.
	EndSession(ctx context.Context, sessionKey string, at time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSession(ctx context.Context, session *Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *repository) GetSessionByKey(ctx context.Context, sessionKey string) (*Session, error) {
	var session Session
	err := r.db.WithContext(ctx).Where("session_key = ?", sessionKey).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

func (r *repository) EndSession(ctx context.Context, sessionKey string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Session{}).
		Where("session_key = ? AND ended_at IS NULL", sessionKey).
		Update("ended_at", at)
	if res.Error != nil {
		return false, fmt.Errorf("failed to end session: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
