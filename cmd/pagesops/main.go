package main

import (
	"log/slog"
	"os"

	"github.com/northroot-labs/pagesops/internal/infrastructure/logger"
	"github.com/northroot-labs/pagesops/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("PAGESOPS_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logFormat := os.Getenv("PAGESOPS_LOG_FORMAT")

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    logFormat,
		AddSource: os.Getenv("PAGESOPS_DEBUG") != "",
	})

	cli.Execute()
}
