package app

import (
	"context"
	"time"

	"boardapi/internal/app/board"
	"boardapi/internal/app/health"
	"boardapi/internal/app/session"
	"boardapi/internal/app/user"
	"boardapi/internal/auth"
	"boardapi/internal/config"
	"boardapi/internal/db"
	"boardapi/internal/db/seeder"
	"boardapi/internal/providers/redis"
	"boardapi/internal/router"
	"boardapi/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const redisMonitorInterval = 30 * time.Second

type Application struct {
	Router *router.Router
	DB     *gorm.DB
	Redis  *redis.RedisProvider
}

func Bootstrap(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, dbConn, logger, "up"); err != nil {
			return nil, err
		}
	}

	if cfg.SeedOnStartup {
		if err := seeder.NewSeeder(dbConn, logger).Seed(ctx); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	go redisProvider.StartConnectionMonitor(ctx, redisMonitorInterval)

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	sessionRepo := session.NewRepository(dbConn)
	userRepo := user.NewRepository(dbConn, hasher)
	boardRepo := board.NewCachedRepository(board.NewRepository(dbConn), redisProvider, cfg.BoardCacheTTL, logger)

	sessionService := session.NewService(sessionRepo, redisProvider, cfg.SessionTTL, cfg.RedisTTL, logger)
	userService := user.NewService(userRepo, logger)
	boardService := board.NewService(boardRepo, logger)
	healthService := health.NewService(utils.NewHealthChecker().
		AddPostgres(dbConn).
		AddRedis(redisProvider.Client))

	r := router.NewRouter(logger, cfg.FrontendURLs, sessionService)

	r.RegisterHealthRoutes(health.NewHandler(healthService))
	r.RegisterSessionRoutes(session.NewHandler(sessionService, logger))
	r.RegisterUserRoutes(user.NewHandler(userService, sessionService, logger))
	r.RegisterBoardRoutes(board.NewHandler(boardService))
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
		Redis:  redisProvider,
	}, nil
}

func (a *Application) Close() error {
	if err := a.Redis.Close(); err != nil {
		return err
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
