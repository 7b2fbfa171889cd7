package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware tags every request with an id and logs method and path
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		log.Printf("[%s] Request: %s %s", requestID, c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered: %v", err)
				c.JSON(500, gin.H{"success": false, "message": "internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

func ApplyMiddleware(r *gin.Engine) {
	r.Use(LoggerMiddleware())
	r.Use(RecoveryMiddleware())
}
