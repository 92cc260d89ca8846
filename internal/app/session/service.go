package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const keyBytes = 32

// Cache is the lookup cache in front of the sessions table.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service interface {
	CreateSession(ctx context.Context, userID, userAgent string) (*Session, error)
	GetSession(ctx context.Context, sessionKey string) (*Session, error)
	ResolveUserID(ctx context.Context, sessionKey string) (string, error)
	EndSession(ctx context.Context, sessionKey string) error
}

type service struct {
	repo     Repository
	cache    Cache
	lifetime time.Duration
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewService(repo Repository, cache Cache, lifetime, cacheTTL time.Duration, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		cache:    cache,
		lifetime: lifetime,
		cacheTTL: cacheTTL,
		logger:   logger.Sugar(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func cacheKey(sessionKey string) string {
	return "session:" + sessionKey
}

func (s *service) CreateSession(ctx context.Context, userID, userAgent string) (*Session, error) {
	key, err := generateSessionKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}

	now := s.now()
	session := &Session{
		SessionKey: key,
		UserID:     userID,
		StartedAt:  now,
		ExpiresAt:  now.Add(s.lifetime),
		CreatedAt:  now,
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Infow("CreateSession: session started", "user_id", userID, "expires_at", session.ExpiresAt)
	return session, nil
}

// GetSession returns the live session for the key, or ErrNotFound when it
// is unknown, ended or expired.
func (s *service) GetSession(ctx context.Context, sessionKey string) (*Session, error) {
	if sessionKey == "" {
		return nil, ErrNotFound
	}

	var cached Session
	hit, err := s.cache.GetJSON(ctx, cacheKey(sessionKey), &cached)
	if err != nil {
		s.logger.Warnw("GetSession: cache read failed", "error", err)
	}
	if hit {
		if !cached.Active(s.now()) {
			return nil, ErrNotFound
		}
		return &cached, nil
	}

	session, err := s.repo.GetSessionByKey(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !session.Active(now) {
		return nil, ErrNotFound
	}

	ttl := s.cacheTTL
	if remaining := session.ExpiresAt.Sub(now); remaining < ttl {
		ttl = remaining
	}
	if err := s.cache.SetJSON(ctx, cacheKey(sessionKey), session, ttl); err != nil {
		s.logger.Warnw("GetSession: cache write failed", "error", err)
	}
	return session, nil
}

func (s *service) ResolveUserID(ctx context.Context, sessionKey string) (string, error) {
	session, err := s.GetSession(ctx, sessionKey)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}

func (s *service) EndSession(ctx context.Context, sessionKey string) error {
	if sessionKey == "" {
		return ErrNotFound
	}
	ended, err := s.repo.EndSession(ctx, sessionKey, s.now())
	if err != nil {
		return err
	}
	// After the row is ended a concurrent lookup can no longer re-cache it.
	if err := s.cache.Delete(ctx, cacheKey(sessionKey)); err != nil {
		s.logger.Warnw("EndSession: cache delete failed", "error", err)
	}
	if !ended {
		return ErrNotFound
	}
	s.logger.Infow("EndSession: session ended")
	return nil
}

func generateSessionKey() (string, error) {
	bytes := make([]byte, keyBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
