package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/reqpilot/reqpilot/internal/handlers"
	"github.com/reqpilot/reqpilot/internal/middleware"
	"github.com/reqpilot/reqpilot/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware(), middleware.RequireUser())
		{
			projects.POST("", handlers.CreateProject)
			projects.GET("", handlers.ListProjects)

			projects.POST("/:project_id/requirements", handlers.SubmitRequirement)
			projects.GET("/:project_id/requirements", handlers.ListRequirements)

			projects.GET("/:project_id/messages", handlers.ListProjectMessages)
		}

		api.GET("/admin-contact", middleware.AuthMiddleware(), middleware.RequireUser(), handlers.GetAdminContact)
		api.POST("/messages", middleware.AuthMiddleware(), handlers.SendMessage)

		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			admin.GET("/projects", handlers.AdminListProjects)
			admin.GET("/projects/:project_id/requirements", handlers.AdminListRequirements)
			admin.GET("/dashboard/data", handlers.AdminDashboardData)
		}
	}

	return r
}
