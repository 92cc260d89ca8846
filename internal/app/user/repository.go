package user

import (
	"context"
	"errors"
	"fmt"

	"boardapi/internal/auth"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

var ErrDuplicateID = errors.New("user id already exists")

type Repository interface {
	UserExists(ctx context.Context, id string) (bool, error)
	// InsertUser hashes rawPassword before it reaches the table.
	InsertUser(ctx context.Context, id, rawPassword, email string) (bool, error)
	VerifyLogin(ctx context.Context, id, rawPassword string) (bool, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

type repository struct {
	db     *gorm.DB
	hasher auth.Hasher
}

func NewRepository(db *gorm.DB, hasher auth.Hasher) Repository {
	return &repository{db: db, hasher: hasher}
}

func (r *repository) UserExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user %s: %w", id, err)
	}
	return count > 0, nil
}

func (r *repository) InsertUser(ctx context.Context, id, rawPassword, email string) (bool, error) {
	hash, err := r.hasher.Hash(rawPassword)
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).Create(&User{
		ID:       id,
		Password: hash,
		Email:    email,
	})
	if res.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(res.Error, &pgErr) && pgErr.Code == uniqueViolation {
			return false, ErrDuplicateID
		}
		return false, fmt.Errorf("failed to insert user %s: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// VerifyLogin reports false for an unknown id and for a wrong password alike.
func (r *repository) VerifyLogin(ctx context.Context, id, rawPassword string) (bool, error) {
	var u User
	err := r.db.WithContext(ctx).Select("password").Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load credentials for %s: %w", id, err)
	}
	return r.hasher.Verify(u.Password, rawPassword)
}

func (r *repository) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return &u, nil
}
