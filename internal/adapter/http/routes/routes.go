package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskapi/internal/adapter/http/handler"
	"taskapi/internal/adapter/http/middleware"
	"taskapi/internal/core/port"
	"taskapi/pkg/config"
	respcache "taskapi/pkg/response"
	"taskapi/pkg/telemetry"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TaskHandler *handler.TaskHandler
}

func SetupRouter(handlers HandlersConfig, tokens port.TokenService, cache *respcache.ResponseCache, metrics *telemetry.AppMetrics, logger *config.AppLogger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("taskapi"))

	if metrics != nil {
		router.Use(metrics.GinMiddleware())
	}

	if logger != nil {
		router.Use(middleware.LoggingMiddleware(logger))
	}

	router.Use(corsMiddleware())

	setupBannerRoutes(router)
	setupAuthRoutes(router, handlers.AuthHandler, tokens)
	setupTaskRoutes(router, handlers.TaskHandler, tokens, cache)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}

func setupBannerRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Todo Backend API",
			"endpoints": gin.H{
				"auth":  "/api/auth",
				"tasks": "/api/tasks",
			},
		})
	})
}

func setupAuthRoutes(router *gin.Engine, authHandler *handler.AuthHandler, tokens port.TokenService) {
	if authHandler == nil {
		return
	}

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthGuard(tokens), authHandler.Me)
	}
}

func setupTaskRoutes(router *gin.Engine, taskHandler *handler.TaskHandler, tokens port.TokenService, cache *respcache.ResponseCache) {
	if taskHandler == nil {
		return
	}

	tasks := router.Group("/api/tasks")
	tasks.Use(middleware.AuthGuard(tokens))
	{
		if cache != nil {
			tasks.GET("", cache.Middleware(middleware.CurrentUserUUID), taskHandler.GetAllTasks)
		} else {
			tasks.GET("", taskHandler.GetAllTasks)
		}

		tasks.POST("", taskHandler.CreateTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
