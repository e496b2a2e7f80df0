package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/anggarapp/task-crud-api/config"
	"github.com/anggarapp/task-crud-api/database"
	"github.com/anggarapp/task-crud-api/handlers"
	"github.com/anggarapp/task-crud-api/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Close()
	log.Println("Successfully connected to the PostgreSQL database!")

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	store := database.NewTaskStore(db)
	h := handlers.NewHandlers(store)

	// Operational endpoints live on their own port so the raw task
	// protocol stays untouched.
	go func() {
		log.Printf("admin endpoints on %s", cfg.AdminAddr)
		if err := http.ListenAndServe(cfg.AdminAddr, handlers.NewAdminRouter(db)); err != nil {
			log.Fatalf("admin server: %v", err)
		}
	}()

	srv := server.New(cfg.ListenAddr, h)
	log.Fatal(srv.ListenAndServe())
}
