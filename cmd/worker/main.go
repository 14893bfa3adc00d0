package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/cache"
	"github.com/Domenick1991/hotelbooking/internal/email"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	cfgFlag := flag.String("config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(config.Path(*cfgFlag))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-worker")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, zl)
	stop()
	_ = zl.Sync()
	if err != nil {
		// Exit non-zero so the supervisor restarts the worker; the failed message
		// was not committed and is consumed again.
		log.Fatalf("worker: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		return errors.New("kafka brokers and notifications_topic are required for the worker")
	}

	redisClient := cache.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	deduper := cache.NewNotificationDeduper(redisClient, time.Duration(cfg.Notifications.DedupTTLMinutes)*time.Minute)
	if err := deduper.Ping(ctx); err != nil {
		return fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}

	notifier := email.NewNotifier(deduper, email.NewSender(zl), zl)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, zl)
	defer consumer.Close()

	zl.Info("notification worker started",
		zap.String("topic", cfg.Kafka.NotificationsTopic),
		zap.String("group_id", cfg.Kafka.GroupID))

	err := consumer.Consume(ctx, kafka.ReservationHandler(zl, notifier.Handle))
	if err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("consumer stopped", zap.Error(err))
		return err
	}
	zl.Info("notification worker stopped")
	return nil
}
