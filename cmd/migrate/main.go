package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/razorsharp/storefront-backend/pkg/config"
	"github.com/razorsharp/storefront-backend/pkg/db"
	"github.com/razorsharp/storefront-backend/pkg/logger"
	"github.com/razorsharp/storefront-backend/pkg/migrate"
)

func main() {
	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|create|validate")
	dir := flag.String("dir", migrate.DefaultDir, "goose migrations directory")
	name := flag.String("name", "", "migration name (for create)")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	// create and validate work on files alone, no config or DB needed.
	switch *cmd {
	case "create":
		if *name == "" {
			fatal("missing -name for create")
		}
		path, err := migrate.CreateSQLMigration(*dir, *name)
		if err != nil {
			fatal("failed to create migration: %v", err)
		}
		fmt.Println("created migration:", path)
		return

	case "validate":
		if err := migrate.ValidateDir(*dir); err != nil {
			fatal("migration validation failed: %v", err)
		}
		fmt.Println("migration validation passed")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("loading config: %v", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
		"dir": *dir,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "connecting to database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		logg.Error(ctx, "extracting sql.DB", err)
		os.Exit(1)
	}

	switch *cmd {
	case "up", "down", "status":
		if err := migrate.Run(ctx, sqlDB, *dir, *cmd); err != nil {
			fatal("goose %s failed: %v", *cmd, err)
		}

	case "version":
		if *version == "" {
			fatal("missing -version for version command")
		}
		if err := migrate.MigrateToVersion(ctx, sqlDB, *dir, *version); err != nil {
			fatal("goose version migrate failed: %v", err)
		}

	default:
		fatal("unknown -cmd value: %s", *cmd)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
