package main

import (
	"log"

	"codereview-backend/internal/bootstrap"
	"codereview-backend/internal/shared/config"
	"codereview-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting review API on %s (model %s)", addr, cfg.ModelName)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
