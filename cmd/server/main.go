package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"dispatch-desk/internal/adapters/tablestore"
	"dispatch-desk/internal/api"
	"dispatch-desk/internal/config"
	"dispatch-desk/internal/services"
)

// main is the application composition root.
// It loads the five tables into the working copy and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	store := tablestore.NewCSVStore(cfg.DataDir)

	// Tables load once at startup; missing files come back as empty
	// tables with their default schemas.
	tabs, err := services.LoadTables(context.Background(), store)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(tabs)

	log.Printf("Server listening addr=:%s data_dir=%s", cfg.Port, cfg.DataDir)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
