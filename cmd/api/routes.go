package main

import (
	"context"
	"net/http"
	"time"

	"realestate-listings/internal/middleware"
	"realestate-listings/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupHealthCheck pings every backing store
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		checks := gin.H{}
		healthy := true
		for name, ping := range a.probes {
			if err := ping(ctx); err != nil {
				logger.GlobalLogger.Warnf("%s ping failed: %v", name, err)
				checks[name] = "unavailable"
				healthy = false
				continue
			}
			checks[name] = "ok"
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "checks": checks})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	requireAuth := middleware.AuthMiddleware(a.Config.JWT.Secret)

	api := a.Router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", a.UserHandler.Register)
		authRoutes.POST("/login", a.UserHandler.Login)

		api.GET("/users/me", requireAuth, a.UserHandler.Me)

		properties := api.Group("/properties")
		{
			properties.GET("/search", a.PropertyHandler.SearchProperties)
			properties.GET("/user/:user_id", a.PropertyHandler.ListByOwner)
			properties.GET("/:id", a.PropertyHandler.GetPropertyByID)

			properties.POST("", requireAuth, a.PropertyHandler.CreateProperty)
			properties.PUT("/:id", requireAuth, a.PropertyHandler.UpdateProperty)
			properties.DELETE("/:id", requireAuth, a.PropertyHandler.DeleteProperty)
		}
	}
}
