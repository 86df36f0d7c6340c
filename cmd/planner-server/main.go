// cmd/planner-server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"trip-planner/internal/app"
	"trip-planner/internal/common/config"
	"trip-planner/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("init application: %v", err)
	}
	defer application.Close(ctx)

	srv := server.New(cfg, application.Runner, application.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		application.Logger.Error("server stopped", map[string]interface{}{"error": err.Error()})
	case sig := <-sigCh:
		application.Logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		if err := srv.Shutdown(ctx); err != nil {
			application.Logger.Error("shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}
}
