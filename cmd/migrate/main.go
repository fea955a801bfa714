package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"shopifyte/internal/config"
	"shopifyte/internal/database"
	"shopifyte/internal/logger"

	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate [flags] <command>

Commands:
  up       apply all pending migrations
  down     roll back the most recent migration
  status   print the state of every migration
  version  print the current schema version

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

// run executes one migration command and returns the process exit code. Deferred cleanup
// runs before main exits.
func run() int {
	dir := flag.String("dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return 2
	}

	cfg := config.Load()
	if *dir != "" {
		cfg.Migrations.Dir = *dir
	}

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	ctx := context.Background()

	dbService, err := database.New(ctx, cfg.Database, log)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return 1
	}
	defer dbService.Close()

	db := dbService.DB()

	switch command := flag.Arg(0); command {
	case "up":
		if err = database.EnsureSchema(ctx, db, cfg.Database.Schema); err == nil {
			err = database.RunMigrations(db, cfg.Migrations.Dir, log)
		}
	case "down":
		err = database.RollbackMigration(db, cfg.Migrations.Dir, log)
	case "status":
		err = database.GetMigrationStatus(db, cfg.Migrations.Dir)
	case "version":
		var version int64
		version, err = database.MigrationVersion(ctx, db)
		if err == nil {
			fmt.Println(version)
		}
	default:
		log.Error("Unknown command", zap.String("command", command))
		usage()
		return 2
	}

	if err != nil {
		log.Error("Migration command failed", zap.String("command", flag.Arg(0)), zap.Error(err))
		return 1
	}
	return 0
}
