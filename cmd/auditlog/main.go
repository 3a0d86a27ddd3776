// auditlog consumes allocation events from RabbitMQ and writes each one as a
// JSON log line, to stdout and optionally to a file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hall-allocation/internal/infra/messaging"
	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/usecase/shared"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var url, queue, output string

	flagSet := pflag.NewFlagSet("auditlog", pflag.ContinueOnError)
	flagSet.StringVar(&url, "url", "", "AMQP URL (default: RABBITMQ_URL)")
	flagSet.StringVar(&queue, "queue", "", "queue to consume (default: RABBITMQ_QUEUE)")
	flagSet.StringVarP(&output, "output", "o", "", "also append JSON records to this file")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	var mqCfg config.RabbitMQConfig
	if err := envconfig.Process("", &mqCfg); err != nil {
		return fmt.Errorf("failed to process RabbitMQ config: %w", err)
	}
	if url == "" {
		url = mqCfg.URL
	}
	if queue == "" {
		queue = mqCfg.Queue
	}

	var sink io.Writer = os.Stdout
	if output != "" {
		file, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", output, err)
		}
		defer file.Close()
		sink = io.MultiWriter(os.Stdout, file)
	}

	audit := slog.New(slog.NewJSONHandler(sink, nil))
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.InfoContext(ctx, "audit consumer starting", "queue", queue)

	consumer := messaging.NewConsumer(url, queue, func(ctx context.Context, event shared.AllocationEvent) error {
		audit.LogAttrs(ctx, slog.LevelInfo, string(event.Type), eventAttrs(event)...)
		return nil
	})

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("audit consumer stopped")
	return nil
}

func eventAttrs(event shared.AllocationEvent) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("hall_id", event.HallID.String()),
		slog.String("hall_name", event.HallName),
		slog.String("actor_id", event.ActorID.String()),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.RequestID != nil {
		attrs = append(attrs, slog.String("request_id", event.RequestID.String()))
	}
	if event.LecturerID != nil {
		attrs = append(attrs, slog.String("lecturer_id", event.LecturerID.String()))
	}
	if event.ExamTitle != "" {
		attrs = append(attrs, slog.String("exam_title", event.ExamTitle))
	}
	if event.PurgedRequests != nil {
		attrs = append(attrs, slog.Int64("purged_requests", *event.PurgedRequests))
	}
	return attrs
}
