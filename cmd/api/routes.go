package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	})

	r.Use(CORSMiddleware())

	r.GET("/health", app.Handler.Health)

	api := r.Group("/api")
	{
		api.GET("/ideas", app.Handler.ListIdeas)
		api.POST("/ideas", app.Handler.CreateIdea)
		api.GET("/ideas/:idea_id", app.Handler.GetIdea)
	}

	return r
}
