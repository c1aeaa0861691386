package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kirankarlapati/fruitanalyser/internal/chatbot"
	"github.com/kirankarlapati/fruitanalyser/internal/insights"
	"github.com/kirankarlapati/fruitanalyser/internal/logger"
	"github.com/kirankarlapati/fruitanalyser/internal/middleware"
	"github.com/kirankarlapati/fruitanalyser/internal/prediction"
	"github.com/kirankarlapati/fruitanalyser/internal/upload"
)

type Deps struct {
	Log      *logger.Logger
	Upload   *upload.Handler
	History  *prediction.Handler
	Insights *insights.Handler
	Chatbot  *chatbot.Handler
}

// New assembles the gin engine shared by the server entrypoint and the
// handler tests.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if deps.Log != nil {
		r.Use(middleware.RequestLogger(deps.Log))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FruitAnalyser API Gateway",
			"version": "1.0.0",
			"endpoints": gin.H{
				"upload":   "POST /api/upload",
				"history":  "GET /api/history",
				"insights": "GET /api/insights",
				"chatbot":  "POST /api/chatbot",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/upload", deps.Upload.Upload)

		history := api.Group("/history")
		{
			history.GET("", deps.History.List)
			history.GET("/:id", deps.History.Get)
			history.DELETE("/:id", deps.History.Delete)
		}

		insightsGroup := api.Group("/insights")
		{
			insightsGroup.GET("", deps.Insights.Get)
			insightsGroup.GET("/summary", deps.Insights.GetSummary)
		}

		api.POST("/chatbot", deps.Chatbot.Chat)
	}

	return r
}
