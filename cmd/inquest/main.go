package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inquest/internal/config"
	"inquest/internal/ui"
	"inquest/internal/util/logx"
	"inquest/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("inquest", version.String())
		return
	}

	// Setup cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting inquest %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		logx.Errorf("inquest exited with error: %v", err)
		os.Exit(1)
	}
}
