package main

import (
	"errors"
	"flag"

	"siap-cuti/internal/config"
	"siap-cuti/internal/shared/connection"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "up or down")
	steps := flag.Int("steps", 0, "number of steps to migrate; 0 applies all")
	path := flag.String("path", "file://migrations", "migration source URL")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		logger.Fatal("create migrate driver failed", zap.Error(err))
	}

	m, err := migrate.NewWithDatabaseInstance(*path, "postgres", driver)
	if err != nil {
		logger.Fatal("create migrate instance failed", zap.Error(err))
	}

	switch {
	case *steps != 0 && *direction == "down":
		err = m.Steps(-*steps)
	case *steps != 0:
		err = m.Steps(*steps)
	case *direction == "down":
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("migration failed", zap.String("direction", *direction), zap.Error(err))
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		logger.Fatal("read migration version failed", zap.Error(verr))
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no new migrations to apply", zap.Uint("version", version))
		return
	}
	logger.Info("migrations applied", zap.String("direction", *direction), zap.Uint("version", version), zap.Bool("dirty", dirty))
}
