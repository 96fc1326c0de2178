package main

import (
	"log"

	"github.com/joho/godotenv"

	"tablematch/internal/config"
	"tablematch/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	app, err := ui.NewApp(cfg)
	if err != nil {
		log.Fatal("Failed to create web app:", err)
	}

	log.Printf("Starting tablematch on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start())
}
