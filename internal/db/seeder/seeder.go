package seeder

import (
	"context"

	"boardapi/internal/app/board"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	s.logger.Info("Running database seeders...")

	if err := s.seedBoards(ctx); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedBoards inserts unowned boards into an empty table; anyone may edit them.
func (s *Seeder) seedBoards(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&board.Board{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	boards := []board.Board{
		{Title: "Welcome", Content: "This board is open: anyone can edit or delete it."},
		{Title: "Rules", Content: "Posts you write while logged in can only be changed by you."},
	}

	if err := s.db.WithContext(ctx).Create(&boards).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded boards", zap.Int("count", len(boards)))
	return nil
}
