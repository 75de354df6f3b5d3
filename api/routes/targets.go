package routes

import (
	"recontrack/internal/dao"
	"recontrack/internal/handlers"
	"recontrack/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitTargetRoutes(router *gin.RouterGroup, db *gorm.DB) {
	targetDao := dao.NewTargetDAO(db)
	targetService := services.NewTargetService(targetDao)
	handlers := handlers.NewTargetHandler(targetService)

	targetRoutes := router.Group("/targets")
	{
		targetRoutes.POST("", handlers.CreateTarget)
		targetRoutes.GET("", handlers.ListTargets)
		targetRoutes.GET("/:target", handlers.GetTarget)
		targetRoutes.DELETE("/:target", handlers.DeleteTarget)
		targetRoutes.GET("/:target/export", handlers.ExportTarget)
		targetRoutes.POST("/:target/rootdomains", handlers.CreateRootDomain)
	}
}
