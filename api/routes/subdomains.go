package routes

import (
	"recontrack/internal/dao"
	"recontrack/internal/handlers"
	"recontrack/internal/notification"
	"recontrack/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitSubdomainRoutes(router *gin.RouterGroup, db *gorm.DB, notifier *notification.NotificationClient) {
	targetDao := dao.NewTargetDAO(db)
	subdomainDao := dao.NewSubdomainDAO(db)
	labelDao := dao.NewLabelDAO(db)

	subdomainService := services.NewSubdomainService(targetDao, subdomainDao, labelDao)
	ingestService := services.NewIngestService(targetDao, subdomainDao, notifier)
	handlers := handlers.NewSubdomainHandler(subdomainService, ingestService)

	subdomainRoutes := router.Group("/targets/:target/rootdomains/:rootdomain/subdomains")
	{
		subdomainRoutes.POST("", handlers.CreateSubdomain)
		subdomainRoutes.POST("/upload", handlers.UploadSubdomains)
		subdomainRoutes.GET("/:subdomain", handlers.GetSubdomain)
		subdomainRoutes.PUT("/:subdomain", handlers.UpdateSubdomain)
		subdomainRoutes.POST("/:subdomain/label", handlers.AddLabel)
		subdomainRoutes.DELETE("/:subdomain", handlers.DeleteSubdomain)
	}
}
