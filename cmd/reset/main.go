package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CyberClicker_Go/internal/bootstrap"
	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/config"
	"github.com/osse101/CyberClicker_Go/internal/database"
)

// reset deletes one player's save, or with -all recreates the whole store.
func main() {
	player := flag.String("player", "", "player id whose save is deleted")
	all := flag.Bool("all", false, "wipe every save (drops and recreates the postgres database, or empties DATA_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch {
	case *player != "":
		resetPlayer(ctx, cfg, *player)
	case *all:
		resetAll(ctx, cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func resetPlayer(ctx context.Context, cfg *config.Config, playerID string) {
	backend, err := bootstrap.OpenBackend(ctx, cfg, clock.Real{})
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", cfg.StorageBackend, err)
	}
	defer backend.Close()

	if err := backend.Snapshots.Delete(ctx, playerID); err != nil {
		log.Fatalf("Failed to delete save for %s: %v", playerID, err)
	}
	log.Printf("✅ Save for %s deleted from %s backend.\n", playerID, cfg.StorageBackend)
}

func resetAll(ctx context.Context, cfg *config.Config) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		recreateDatabase(ctx, cfg)
	case config.BackendFile:
		if err := os.RemoveAll(cfg.DataDir); err != nil {
			log.Fatalf("Failed to remove %s: %v", cfg.DataDir, err)
		}
		log.Printf("✅ %s removed.\n", cfg.DataDir)
	default:
		log.Fatalf("-all is not supported for the %s backend; use -player", cfg.StorageBackend)
	}
}

func recreateDatabase(ctx context.Context, cfg *config.Config) {
	serverConnString := database.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, "postgres", cfg.DBSSLMode)
	serverPool, err := database.NewPool(serverConnString, 2, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", name)); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", name)); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	log.Println("\n✅ Database reset complete! Migrations run on the next server start.")
}
