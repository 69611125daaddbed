package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/config"
	"github.com/camden-git/starwarsapi/database"
	"github.com/camden-git/starwarsapi/logging"
	"github.com/camden-git/starwarsapi/server"
)

// app carries what every command needs once config and logging are up.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}

	a := &app{}
	cliApp := &cli.App{
		Name:  "swapi",
		Usage: "Star Wars people, planets and favorites REST API",
		Before: func(ctx *cli.Context) error {
			return a.init()
		},
		After: func(ctx *cli.Context) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: a.serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update database tables",
				Action: a.migrate,
			},
			{
				Name:   "seed",
				Usage:  "insert sample users, people and planets into empty tables",
				Action: a.seed,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		if a.logger != nil {
			a.logger.Fatal("command failed", zap.Error(err))
		}
		log.Fatalf("FATAL: %v", err)
	}
}

func (a *app) init() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := logging.New(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) openDB() (*gorm.DB, error) {
	db, err := database.InitGormDB(a.cfg.Database, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func (a *app) serve(ctx *cli.Context) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if a.cfg.Database.AutoMigrate {
		if err := database.AutoMigrateModels(db); err != nil {
			return err
		}
		a.logger.Info("database schema migrated")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := server.NewRouter(a.cfg.Server, server.NewGormRepositories(db), a.logger, reg)
	return server.Run(ctx.Context, a.cfg.Server.Port, router, a.logger)
}

func (a *app) migrate(ctx *cli.Context) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrateModels(db); err != nil {
		return err
	}
	a.logger.Info("database schema migrated", zap.String("driver", a.cfg.Database.Driver()))
	return nil
}

func (a *app) seed(ctx *cli.Context) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrateModels(db); err != nil {
		return err
	}
	res, err := database.Seed(ctx.Context, db)
	if err != nil {
		return err
	}
	a.logger.Info("seed complete",
		zap.Int("users", res.Users),
		zap.Int("people", res.People),
		zap.Int("planets", res.Planets),
	)
	return nil
}
