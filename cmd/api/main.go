package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/vtrao/cheetah/internal/config"
	"github.com/vtrao/cheetah/internal/database"
	"github.com/vtrao/cheetah/internal/handler"
	"github.com/vtrao/cheetah/internal/logger"
	"github.com/vtrao/cheetah/internal/repository"
	"go.uber.org/zap"
)

const version = "1.0.0"

type application struct {
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)
	sugar.Infof("database connection: %s", cfg.MaskedDatabaseURL())

	connector := database.NewConnector(cfg.DatabaseURL(), cfg.DB.ConnectAttempts, cfg.DB.ConnectRetryDelay, log)
	repo := repository.NewRepository(connector)

	app := &application{
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handler.NewHandler(log, repo, version),
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
