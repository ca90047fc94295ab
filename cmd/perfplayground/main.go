package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"perfplayground/internal/config"
	"perfplayground/internal/ui"
	"perfplayground/internal/util/logx"
	"perfplayground/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("perfplayground", version.String())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting perfplayground %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		logx.Errorf("perfplayground exited with error: %v", err)
		os.Exit(1)
	}
}
