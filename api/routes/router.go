package routes

import (
	"recontrack/internal/notification"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, notifier *notification.NotificationClient) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		InitTargetRoutes(api, db)
		InitSubdomainRoutes(api, db, notifier)
	}

	return router
}
