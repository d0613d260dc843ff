package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Domenick1991/bookingrpc/config"
	"github.com/Domenick1991/bookingrpc/internal/email"
	"github.com/Domenick1991/bookingrpc/internal/kafka"
	"github.com/Domenick1991/bookingrpc/internal/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.App)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if !cfg.Kafka.Enabled() {
		logg.Fatal("kafka.brokers and kafka.booking_events_topic are required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic, logg)
	defer consumer.Close()

	sender := email.NewSender(logg)

	logg.Info("worker started", zap.String("topic", cfg.Kafka.BookingEventsTopic), zap.String("group", cfg.Kafka.GroupID))
	err = consumer.ConsumeBookingEvents(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		if err := sender.Send(ctx, event); err != nil {
			logg.Warn("send confirmation", zap.String("booking_id", event.BookingID), zap.Error(err))
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("consumer stopped", zap.Error(err))
		return
	}
	logg.Info("worker stopped")
}
