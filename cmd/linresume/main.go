package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/linresume/internal/app"
	"github.com/hyperifyio/linresume/internal/browser"
	"github.com/hyperifyio/linresume/internal/skills"
)

// Exit code policy: 2 configuration error, 3 authentication or 2FA
// failure, 4 unusable profile target, 1 other fatal run error,
// 0 otherwise. Partial section failures complete with exit 0.
const (
	exitOK     = 0
	exitFatal  = 1
	exitConfig = 2
	exitAuth   = 3
	exitTarget = 4
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Local .env is a convenience for credentials; absence is fine.
	_ = godotenv.Load()

	var (
		cfg        app.Config
		configPath string
	)

	fs := newFlagSet(&cfg, &configPath)
	_ = fs.Parse(os.Args[1:])

	if err := composeConfig(&cfg, fs, configPath); err != nil {
		log.Error().Err(err).Str("path", configPath).Msg("config file unreadable")
		os.Exit(exitConfig)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(exitConfig)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(classify(err))
	}
	os.Exit(exitOK)
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}

func classify(err error) int {
	if errors.Is(err, browser.ErrAuthFailed) || errors.Is(err, browser.ErrTwoFactor) {
		return exitAuth
	}
	var terr *skills.TargetError
	if errors.As(err, &terr) {
		return exitTarget
	}
	return exitFatal
}
