// @title Apridrive
// @version 0.1
// @description Form records with remote-storage attachments.

// @host localhost:8080
// @BasePath /api
// @query.collection.format multi
// @schemes http

package main

import (
	"log"

	_ "apridrive/docs"
	"apridrive/internal/app"
	"apridrive/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
