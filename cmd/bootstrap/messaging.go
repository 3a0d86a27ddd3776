package bootstrap

import (
	"context"
	"log/slog"

	"hall-allocation/internal/infra/messaging"
	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if !cfg.RabbitMQ.Enabled {
		slog.Info("allocation events disabled")
		return messaging.NoopPublisher{}, nil
	}

	pub, err := messaging.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	slog.Info("allocation events enabled", "queue", cfg.RabbitMQ.Queue)
	return pub, nil
}
