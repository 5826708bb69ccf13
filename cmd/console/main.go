package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-calc-frontends/internal/config"
	"go-calc-frontends/internal/console"
	"go-calc-frontends/internal/observability"
	"go-calc-frontends/internal/session"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logs go to a file (or nowhere) so they never mix with the prompts.
	if err := observability.InitFileLogger(cfg.ConsoleLogFile, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// An interrupt cancels the context and aborts any pending prompt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := console.NewLoop(session.New(), os.Stdin, os.Stdout, observability.Logger)
	if err := loop.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
