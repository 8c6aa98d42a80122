// Command acodelab is a terminal client for the Acode Lab platform. main
// wires the session store, gateway and services, then dispatches one
// subcommand. Business logic lives in the internal packages.
package main

import (
	"context"
	"fmt"
	"os"

	"acodelab/internal/api"
	"acodelab/internal/auth"
	"acodelab/internal/feed"
	"acodelab/internal/gateway"
	"acodelab/internal/platform/config"
	"acodelab/internal/platform/logger"
	"acodelab/internal/platform/metrics"
	"acodelab/internal/session"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the top-level error boundary: any panic below it is rendered as a
// fallback message instead of a crash trace.
func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "algo deu errado: %v\n", r)
			code = 1
		}
	}()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	store := session.NewFileStore(cfg.SessionFile)

	var manager *auth.Manager
	client := gateway.New(cfg, session.Accessor{Store: store},
		gateway.WithLogger(log),
		gateway.WithMetrics(metrics.New(nil)),
		gateway.WithOnUnauthorized(func() {
			if manager != nil {
				manager.ForceAnonymous()
			}
			fmt.Fprintln(os.Stderr, "Sessão expirada. Faça login novamente com `acodelab login`.")
		}),
	)
	services := api.NewServices(client)
	manager = auth.NewManager(services.Auth, store, auth.WithLogger(log))
	controller := feed.NewController(services.Connect, feed.WithLogger(log))

	app := &app{
		cfg:        cfg,
		store:      store,
		services:   services,
		manager:    manager,
		controller: controller,
	}

	if len(args) == 0 {
		app.usage()
		return 2
	}

	ctx := context.Background()
	if err := app.dispatch(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
