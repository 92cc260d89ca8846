package router

import (
	_ "boardapi/docs"
	"boardapi/internal/app/board"
	"boardapi/internal/app/health"
	"boardapi/internal/app/session"
	"boardapi/internal/app/user"
	"boardapi/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(logger *zap.Logger, allowedOrigins []string, resolver middleware.SessionResolver) *Router {
	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.CORSMiddleware(allowedOrigins))
	engine.Use(middleware.IdentityMiddleware(resolver, logger))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	return &Router{Engine: engine}
}

func (r *Router) api() *gin.RouterGroup {
	return r.Engine.Group("/api")
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.api(), handler)
}

func (r *Router) RegisterSessionRoutes(handler session.Handler) {
	session.RegisterRoutes(r.api(), handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.api(), handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.api(), handler)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
