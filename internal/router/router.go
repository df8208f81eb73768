package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/grantdesk/grantdesk/internal/handlers"
	"github.com/grantdesk/grantdesk/internal/middleware"
	"github.com/grantdesk/grantdesk/internal/types"
	"gorm.io/gorm"
)

func NewRouter(database *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userHandler := handlers.NewUserHandler(database)
	clubHandler := handlers.NewClubHandler(database)
	procurementHandler := handlers.NewProcurementHandler(database)
	grantHandler := handlers.NewGrantHandler(database)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		users := api.Group("/u")
		{
			users.POST("/user", userHandler.Signup)
			users.GET("/user/all", userHandler.ListUsers)
			users.GET("/user", middleware.AuthMiddleware(), userHandler.Login)
			users.PUT("/user", middleware.AuthMiddleware(), userHandler.UpdateUser)
			users.DELETE("/user", middleware.AuthMiddleware(), userHandler.DeleteUser)
		}

		clubs := api.Group("/c", middleware.AuthMiddleware())
		{
			clubs.GET("", clubHandler.ListClubs)
			clubs.POST("", clubHandler.CreateClub)
			clubs.PUT("", clubHandler.UpdateClub)
			clubs.DELETE("", clubHandler.DeleteClub)
		}

		items := api.Group("/p", middleware.AuthMiddleware())
		{
			items.GET("", procurementHandler.ListItems)
			items.POST("", procurementHandler.CreateItem)
			items.PUT("", procurementHandler.UpdateItem)
			items.DELETE("", procurementHandler.DeleteItem)
		}

		grants := api.Group("/g", middleware.AuthMiddleware())
		{
			grants.GET("", grantHandler.ListGrants)
			grants.POST("", grantHandler.CreateGrant)
		}
	}

	return r
}
