package user

import "time"

const (
	MinIDLength       = 4
	MaxIDLength       = 64
	MinPasswordLength = 4
	// MaxPasswordBytes is the most bcrypt will hash.
	MaxPasswordBytes = 72
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	Email     string    `json:"email" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	ID       *string `json:"id"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

type LoginRequest struct {
	ID       *string `json:"id"`
	Password *string `json:"password"`
}

type AuthResponse struct {
	UserID     string    `json:"user_id"`
	SessionKey string    `json:"session_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type MeResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	CreatedAt        time.Time `json:"created_at"`
	SessionStartedAt time.Time `json:"session_started_at"`
	SessionExpiresAt time.Time `json:"session_expires_at"`
}
