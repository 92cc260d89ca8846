package session

import "time"

type Session struct {
	ID         int64      `json:"-" gorm:"primaryKey"`
	SessionKey string     `json:"session_key" gorm:"column:session_key;unique;not null"`
	UserID     string     `json:"user_id" gorm:"column:user_id;not null;index"`
	UserAgent  *string    `json:"user_agent,omitempty" gorm:"type:text"`
	StartedAt  time.Time  `json:"started_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `json:"-"`
}

// Active reports whether the session can still identify its user at now.
func (s *Session) Active(now time.Time) bool {
	return s.EndedAt == nil && now.Before(s.ExpiresAt)
}

type SessionResponse struct {
	UserID    string    `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
