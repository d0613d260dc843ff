package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/Domenick1991/bookingrpc/config"
	bookingsapi "github.com/Domenick1991/bookingrpc/internal/api/bookings_service_api"
	"github.com/Domenick1991/bookingrpc/internal/bootstrap"
	"github.com/Domenick1991/bookingrpc/internal/cache"
	"github.com/Domenick1991/bookingrpc/internal/kafka"
	"github.com/Domenick1991/bookingrpc/internal/logger"
	"github.com/Domenick1991/bookingrpc/internal/metrics"
	"github.com/Domenick1991/bookingrpc/internal/repository"
	"github.com/Domenick1991/bookingrpc/internal/service/booking"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store, closeStore := newStore(ctx, cfg, logg)
	defer closeStore()

	opts := []booking.BookingServiceOption{
		booking.WithDefaultCurrency(cfg.Booking.DefaultCurrency),
		booking.WithLogger(logg),
		booking.WithMetrics(m),
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logg)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			logg.Warn("kafka unavailable, booking events will be retried by the writer", zap.Error(err))
		}
		opts = append(opts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic))
	}
	bookingService := booking.NewBookingService(store, opts...)

	err = bootstrap.Run(ctx, cfg, bootstrap.Deps{
		Bookings: bookingsapi.NewServer(bookingService, logg),
		Logger:   logg,
		Observer: m,
		Gatherer: reg,
	})
	if err != nil {
		logg.Fatal("server error", zap.Error(err))
	}
}

func newStore(ctx context.Context, cfg *config.Config, logg *zap.Logger) (repository.BookingStore, func()) {
	if cfg.Store.Driver != config.StoreDriverRedis {
		logg.Info("using in-memory booking store")
		return repository.NewMemoryBookingStore(), func() {}
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logg.Fatal("init booking store", zap.Error(err))
	}
	logg.Info("using redis booking store", zap.String("addr", cfg.Redis.Addr))
	return repository.NewRedisBookingStore(client, cfg.Store.KeyPrefix), func() { _ = client.Close() }
}
