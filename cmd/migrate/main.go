package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"loanadmin-backend/internal/config"
	"loanadmin-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	log, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if cfg.DBDriver != config.DriverMySQL {
		log.Fatal("migrations target MySQL only", zap.String("driver", cfg.DBDriver))
	}

	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = "./migrations"
	}

	m, err := migrate.New("file://"+path, cfg.MigrateURL())
	if err != nil {
		log.Fatal("migration init failed", zap.Error(err))
	}
	defer func() { _, _ = m.Close() }()
	m.Log = &migrateLogger{log: log.Named("migrate")}

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("up failed", zap.Error(err))
		}
		log.Info("migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatal("down: invalid steps argument", zap.String("arg", args[1]))
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("down failed", zap.Error(err))
		}
		log.Info("migrations: down completed", zap.Int("steps", steps))

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal("version failed", zap.Error(err))
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			log.Fatal("force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("force: invalid version", zap.String("arg", args[1]))
		}
		if err := m.Force(v); err != nil {
			log.Fatal("force failed", zap.Error(err))
		}
		log.Info("migrations: forced", zap.Int("version", v))

	default:
		usage()
		os.Exit(1)
	}
}

type migrateLogger struct{ log *zap.Logger }

func (l *migrateLogger) Printf(format string, v ...any) { l.log.Info(fmt.Sprintf(format, v...)) }
func (l *migrateLogger) Verbose() bool                  { return false }

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Roll back N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (clears dirty state)

Environment:
  MYSQL_HOST, MYSQL_PORT, MYSQL_DB, MYSQL_USER, MYSQL_PASS
  MIGRATIONS_PATH   Path to migrations directory (default: ./migrations)`)
}
