package api

import (
	"github.com/gin-gonic/gin"
)

// NewServer builds the HTTP server with all routes configured.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", handler.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/analyze", handler.AnalyzeBrand)
		api.POST("/upload", handler.UploadCSV)
	}

	return r
}
