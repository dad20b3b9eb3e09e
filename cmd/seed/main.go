package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
)

func main() {
	skipMigrate := flag.Bool("skip-migrate", false, "do not apply migrations before seeding")
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations and exit")
	jobsFile := flag.String("jobs", "", "seed jobs from this JSON file instead of the built-in set")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if !*skipMigrate {
		if err := (migration.Runner{Logger: logger}).Run(ctx, db.SQLDB()); err != nil {
			logger.Fatalf("migration failed: %v", err)
		}
	}
	if *migrateOnly {
		return
	}

	seeders := seeder.Defaults(cfg, logger)
	if *jobsFile != "" {
		data, err := os.ReadFile(*jobsFile)
		if err != nil {
			logger.Fatalf("read %s: %v", *jobsFile, err)
		}
		for i, s := range seeders {
			if js, ok := s.(seeder.JobSeeder); ok {
				js.Data = data
				seeders[i] = js
			}
		}
	}

	if err := (seeder.Runner{Seeders: seeders, Logger: logger}).Run(ctx, db); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
	logger.Printf("[Seed] completed")
}
