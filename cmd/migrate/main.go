// Command migrate applies schema migrations and optional seed data without
// starting the HTTP server. Useful for CI pipelines and container init jobs
// where the application itself runs with AUTO_MIGRATE disabled.
package main

import (
	"database/sql"
	"log"

	"homeledger/internal/config"
	"homeledger/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("Database readiness check failed: %v", err)
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("Migration execution failed: %v", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		log.Fatalf("Seed data loading failed: %v", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		log.Printf("Warning: failed to get migration status: %v", err)
		return
	}

	log.Printf("Migration complete - Version: %d, Dirty: %v", version, dirty)
}
