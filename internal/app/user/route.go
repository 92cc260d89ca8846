package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	users := rg.Group("/user")
	{
		users.POST("/register", handler.Register)
		users.POST("/login", handler.Login)
		users.POST("/logout", handler.Logout)
		users.GET("/me", handler.Me)
	}
}
