package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"boardapi/internal/result"

	"go.uber.org/zap"
)

const (
	msgRegistered     = "registered"
	msgLoggedIn       = "logged in"
	msgInvalidEmail   = "email must contain @"
	msgDuplicateID    = "id is already taken"
	msgLoginRequired  = "id and password are required"
	msgLoginFailed    = "invalid id or password"
	msgRegisterFailed = "failed to register"
	msgStorageError   = "database error"
)

var (
	msgIDTooShort       = fmt.Sprintf("id must be at least %d characters", MinIDLength)
	msgIDTooLong        = fmt.Sprintf("id must be at most %d characters", MaxIDLength)
	msgPasswordTooShort = fmt.Sprintf("password must be at least %d characters", MinPasswordLength)
	msgPasswordTooLong  = fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes)
)

type Service interface {
	Register(ctx context.Context, id, password, email string) result.Result
	Login(ctx context.Context, id, password string) result.Result
	Profile(ctx context.Context, id string) *User
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

// Register validates every field before touching storage. The password is
// never trimmed.
func (s *service) Register(ctx context.Context, id, password, email string) result.Result {
	id = strings.TrimSpace(id)
	email = strings.TrimSpace(email)

	switch {
	case utf8.RuneCountInString(id) < MinIDLength:
		return result.Fail(result.Validation, msgIDTooShort)
	case utf8.RuneCountInString(id) > MaxIDLength:
		return result.Fail(result.Validation, msgIDTooLong)
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return result.Fail(result.Validation, msgPasswordTooShort)
	case len(password) > MaxPasswordBytes:
		return result.Fail(result.Validation, msgPasswordTooLong)
	case !strings.Contains(email, "@"):
		return result.Fail(result.Validation, msgInvalidEmail)
	}

	exists, err := s.repo.UserExists(ctx, id)
	if err != nil {
		s.logger.Errorw("Register: existence check failed", "id", id, "error", err)
		return result.Fail(result.Storage, msgStorageError)
	}
	if exists {
		return result.Fail(result.Conflict, msgDuplicateID)
	}

	ok, err := s.repo.InsertUser(ctx, id, password, email)
	if errors.Is(err, ErrDuplicateID) {
		return result.Fail(result.Conflict, msgDuplicateID)
	}
	if err != nil {
		s.logger.Errorw("Register: insert failed", "id", id, "error", err)
		return result.Fail(result.Storage, msgStorageError)
	}
	if !ok {
		return result.Fail(result.Storage, msgRegisterFailed)
	}

	s.logger.Infow("Register: user registered", "id", id)
	return result.OK(msgRegistered)
}

func (s *service) Login(ctx context.Context, id, password string) result.Result {
	id = strings.TrimSpace(id)
	if id == "" || password == "" {
		return result.Fail(result.Validation, msgLoginRequired)
	}

	ok, err := s.repo.VerifyLogin(ctx, id, password)
	if err != nil {
		s.logger.Errorw("Login: verification failed", "id", id, "error", err)
		return result.Fail(result.Storage, msgStorageError)
	}
	if !ok {
		s.logger.Warnw("Login: rejected credentials", "id", id)
		return result.Fail(result.Unauthorized, msgLoginFailed)
	}

	s.logger.Infow("Login: user logged in", "id", id)
	return result.OK(msgLoggedIn)
}

func (s *service) Profile(ctx context.Context, id string) *User {
	if id == "" {
		return nil
	}
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		s.logger.Errorw("Profile: failed to read user", "id", id, "error", err)
		return nil
	}
	return u
}
