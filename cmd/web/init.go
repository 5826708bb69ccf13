package main

import (
	"context"

	"go-calc-frontends/internal/observability"
	"go-calc-frontends/internal/web"
)

// initMetrics initialises the metric provider and the web front end's
// instruments. Add new domain InitMetrics calls here as the project grows.
func initMetrics(ctx context.Context, export bool) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx, export)
	if err != nil {
		return nil, err
	}

	if err := web.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
