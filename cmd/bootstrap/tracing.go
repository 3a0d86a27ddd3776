package bootstrap

import (
	"context"

	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(
		InitTracing,
	),
)

func InitTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.Init(cfg.Tracing)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
