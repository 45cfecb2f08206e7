package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/artwalls/artwalls/config"
	"github.com/artwalls/artwalls/internal/kafka"
	"github.com/artwalls/artwalls/internal/logging"
	"github.com/artwalls/artwalls/internal/notify"
	"go.uber.org/zap"
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

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic, logger)
	defer consumer.Close()

	sender := notify.NewSender(logger)

	logger.Info("notification worker started", zap.String("topic", cfg.Kafka.BookingTopic))
	if err := consumer.Consume(ctx, sender.Send); err != nil && ctx.Err() == nil {
		logger.Error("consumer stopped", zap.Error(err))
	}
}
