package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	// Create a new slog logger with the default PTerm logger as handler
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("handeval failed", "error", err)
		os.Exit(1)
	}
}
