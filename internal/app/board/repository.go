package board

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotPersisted = errors.New("board was not persisted")

type Repository interface {
	ListBoards(ctx context.Context, limit, offset int) ([]*Board, error)
	// GetBoard returns nil, nil when no board has the id.
	GetBoard(ctx context.Context, id int64) (*Board, error)
	CountBoards(ctx context.Context) (int64, error)
	InsertBoard(ctx context.Context, title, content string, ownerID *string) (int64, error)
	UpdateBoard(ctx context.Context, id int64, title, content string) (bool, error)
	DeleteBoard(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListBoards(ctx context.Context, limit, offset int) ([]*Board, error) {
	var boards []*Board
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&boards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

func (r *repository) GetBoard(ctx context.Context, id int64) (*Board, error) {
	var board Board
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board %d: %w", id, err)
	}
	return &board, nil
}

func (r *repository) CountBoards(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Board{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count boards: %w", err)
	}
	return count, nil
}

func (r *repository) InsertBoard(ctx context.Context, title, content string, ownerID *string) (int64, error) {
	board := &Board{
		Title:   title,
		Content: content,
		OwnerID: ownerID,
	}
	res := r.db.WithContext(ctx).Create(board)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to insert board: %w", res.Error)
	}
	if res.RowsAffected != 1 || board.ID == 0 {
		return 0, ErrNotPersisted
	}
	return board.ID, nil
}

func (r *repository) UpdateBoard(ctx context.Context, id int64, title, content string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Board{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to update board %d: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) DeleteBoard(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Board{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete board %d: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}
