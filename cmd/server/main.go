// Package main provides the Winston HR bot server entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/garyellow/winston-hrbot-go/internal/app"
	"github.com/garyellow/winston-hrbot-go/internal/buildinfo"
	"github.com/garyellow/winston-hrbot-go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to initialize (version %s): %v\n", buildinfo.Version, err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
