package routes

import (
	"github.com/gin-gonic/gin"

	"classwindow/handlers"
	"classwindow/store"
)

// SetupRoutes configures the sync API routes
func SetupRoutes(r *gin.Engine, st *store.Store) {
	r.Use(func(c *gin.Context) {
		c.Set("store", st)
		c.Next()
	})

	r.POST("/api/sync", handlers.SyncHandler)
	r.OPTIONS("/api/sync", handlers.OptionsHandler)
}
