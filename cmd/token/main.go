package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/four-in-a-row-bot/internal/config"
	"github.com/iamasit07/four-in-a-row-bot/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.LoadConfig()

	clientID := flag.String("client", "", "client id to embed in the token")
	ttl := flag.Duration("ttl", cfg.TokenTTL, "token lifetime")
	flag.Parse()

	if *clientID == "" {
		log.Fatal("-client is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := auth.GenerateClientToken(cfg.JWTSecret, *clientID, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
	log.Printf("Token for %s expires at %s", *clientID, time.Now().Add(*ttl).Format(time.RFC3339))
}
