package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/four-in-a-row-bot/internal/transport/http/middleware"
)

// RouterConfig collects what NewRouter wires together. WebSocket may be nil.
type RouterConfig struct {
	Moves          *MoveHandler
	Decisions      *DecisionHandler
	WebSocket      gin.HandlerFunc
	JWTSecret      string
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Protected Routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/api/move", cfg.Moves.PostMove)
		protected.GET("/api/decisions", cfg.Decisions.GetDecisions)
		if cfg.WebSocket != nil {
			protected.GET("/ws", cfg.WebSocket)
		}
	}

	return router
}
