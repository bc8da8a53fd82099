package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/four-in-a-row-bot/internal/config"
	"github.com/iamasit07/four-in-a-row-bot/internal/repository/postgres"
	"github.com/iamasit07/four-in-a-row-bot/internal/repository/redis"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/bot"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/cleanup"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/move"
	transportHttp "github.com/iamasit07/four-in-a-row-bot/internal/transport/http"
	"github.com/iamasit07/four-in-a-row-bot/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 1. Decision log (optional)
	var store move.DecisionStore
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DBDriver, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		log.Println("Running database migrations...")
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		decisionRepo := postgres.NewDecisionRepo(db)
		store = decisionRepo

		cleanup.NewWorker(decisionRepo, cfg.DecisionRetentionDays).Start(ctx)
	} else {
		log.Println("[DB] DATABASE_URL not set, decision log disabled")
	}

	// 2. Move cache (optional)
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache move.MoveCache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewMoveCache(redis.RedisClient)
	}

	// 3. Move service
	depth := cfg.BotDepth
	if cfg.BotDifficulty != "" {
		d, err := bot.ParseDifficulty(cfg.BotDifficulty)
		if err != nil {
			log.Fatalf("Invalid BOT_DIFFICULTY: %v", err)
		}
		depth = d.Depth()
	}
	moveService, err := move.NewService(depth, cache, cfg.MoveCacheTTL, store)
	if err != nil {
		log.Fatalf("Invalid engine configuration: %v", err)
	}
	// every HTTP and websocket caller gets the board size the bot is tuned for
	moveService.SetBoardSize(cfg.FieldColumns, cfg.FieldRows)
	moveService.SetMoveTimeout(cfg.MoveTimeout)

	// 4. Router
	wsHandler := websocket.NewHandler(moveService)
	router := transportHttp.NewRouter(transportHttp.RouterConfig{
		Moves:          transportHttp.NewMoveHandler(moveService),
		Decisions:      transportHttp.NewDecisionHandler(moveService),
		WebSocket:      wsHandler.HandleWebSocket,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if cfg.JWTSecret == "" {
		log.Println("[AUTH] JWT_SECRET not set, API is open")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s (default depth %d, %dx%d boards)", cfg.Port, moveService.DefaultDepth(), cfg.FieldColumns, cfg.FieldRows)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
