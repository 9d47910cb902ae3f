package main

import (
	"os"
	"path/filepath"
	"strings"

	"gridforge/internal/config"
	"gridforge/internal/game"

	"github.com/rs/zerolog"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settings, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if settings.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	game.New(settings, log).Run()
}
