package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/reqpilot/reqpilot/db"
	"github.com/reqpilot/reqpilot/internal/auth"
	"github.com/reqpilot/reqpilot/internal/handlers"
	"github.com/reqpilot/reqpilot/internal/mirror"
	"github.com/reqpilot/reqpilot/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mirrorPath := os.Getenv("MIRROR_LOG")

	if mirrorPath == "" {
		mirrorPath = "requirements.json"
	}

	handlers.Init(mirror.New(mirrorPath))

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
