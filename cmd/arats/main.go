package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thom899g/autonomous-risk-adaptive-trading-system--arats/internal/config"
	"github.com/thom899g/autonomous-risk-adaptive-trading-system--arats/internal/logging"
)

func main() {
	app := kingpin.New("arats", "Autonomous Risk-Adaptive Trading System - loads and validates the runtime configuration")
	envFile := app.Flag("env-file", "Optional .env file loaded before reading the environment").String()
	configFile := app.Flag("config", "Optional YAML overlay for exchange and risk settings").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			panic(fmt.Sprintf("failed to load env file: %v", err))
		}
	}

	// Bootstrap logger; the configured level is not known until the
	// configuration has been loaded.
	logger, err := logging.New(config.DefaultLoggingLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	cfg, err := config.Load(&config.Options{ConfigFile: *configFile}, logger)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	_ = logger.Sync()

	logger, err = logging.New(cfg.LoggingLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("ARATS configuration valid",
		zap.String("project_id", cfg.Firebase.ProjectID),
		zap.String("exchange", cfg.Exchange.ExchangeID),
		zap.Bool("sandbox", cfg.Exchange.SandboxMode),
		zap.Bool("live_trading", cfg.EnableLiveTrading),
		zap.Bool("hedging", cfg.EnableHedging),
	)
}
