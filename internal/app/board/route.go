package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boards := rg.Group("/board")
	{
		boards.GET("", handler.ListBoards)
		boards.GET("/:idx", handler.GetBoard)
		boards.POST("", handler.CreateBoard)
		boards.PUT("/:idx", handler.UpdateBoard)
		boards.DELETE("/:idx", handler.DeleteBoard)
	}
}
