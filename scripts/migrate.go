package main

import (
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/johnquangdev/agency-cms/internal/infrastructure/database"
	"github.com/johnquangdev/agency-cms/pkg/config"
)

func main() {
	dir := flag.String("dir", database.MigrationsDir, "directory holding sql-migrate files")
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database using GORM
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	direction := migrate.Up
	if *down {
		direction = migrate.Down
		log.Printf("⏪ Rolling back one migration from %s/ ...", *dir)
	} else {
		log.Printf("🔄 Applying migrations from %s/ directory...", *dir)
	}

	n, err := database.Migrate(db, *dir, direction)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
}
