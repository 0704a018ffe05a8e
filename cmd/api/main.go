// Command api levanta el dev server: un solo proceso que sirve la API bajo
// el prefijo configurado, los uploads locales, /health y /metrics.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pet-registry/internal/app"
	"pet-registry/internal/host"
	"pet-registry/internal/platform/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer a.Close()

	h := host.NewDevHandler(a.Dispatcher, host.DevOptions{
		Opener:  a.Backends.Opener,
		Metrics: a.Metrics,
	})
	if err := a.Serve(ctx, h); err != nil {
		a.Logger.Sugar().Errorf("server error: %v", err)
		a.Close()
		os.Exit(1)
	}
}
