// Command function corre la API con el modelo función-por-ruta: cada patrón
// de la tabla es una función que solo acepta sus métodos.
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

	h := host.NewFunctionHandler(a.Dispatcher, host.FunctionOptions{
		Prefix: cfg.APIPrefix,
		Opener: a.Backends.Opener,
	})
	if err := a.Serve(ctx, h); err != nil {
		a.Logger.Sugar().Errorf("server error: %v", err)
		a.Close()
		os.Exit(1)
	}
}
