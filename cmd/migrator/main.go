package main

import (
	"context"
	"flag"
	"log"

	"github.com/UnknownOlympus/hrms-lite/internal/config"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	var (
		dir     string
		command string
	)
	flag.StringVar(&dir, "dir", "migrations", "directory with goose migrations")
	flag.StringVar(&command, "command", "up", "goose command: up, down, status, version, redo")
	flag.Parse()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(context.Background(), cfg.Postgres.DSN())
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err) //nolint:gocritic // process exits anyway
	}

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if migrationErr := goose.Run(command, dtb, dir, flag.Args()...); migrationErr != nil {
		log.Fatalf("goose %s failed: %v", command, migrationErr)
	}

	log.Printf("✅ goose %s completed successfully", command)
}
