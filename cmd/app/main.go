package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artwalls/artwalls/api"
	"github.com/artwalls/artwalls/config"
	"github.com/artwalls/artwalls/internal/auth"
	"github.com/artwalls/artwalls/internal/bootstrap"
	"github.com/artwalls/artwalls/internal/cache"
	"github.com/artwalls/artwalls/internal/kafka"
	"github.com/artwalls/artwalls/internal/logging"
	"github.com/artwalls/artwalls/internal/repository"
	"github.com/artwalls/artwalls/internal/service/availability"
	"github.com/artwalls/artwalls/internal/service/booking"
	"github.com/artwalls/artwalls/internal/service/schedule"
	"github.com/jackc/pgx/v5/pgxpool"
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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.ScheduleCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	scheduleRepo := repository.NewScheduleRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	scheduleService := schedule.NewScheduleService(scheduleRepo, redisCache, logger)
	availabilityService := availability.NewAvailabilityService(scheduleService, bookingRepo, logger)
	bookingService := booking.NewBookingService(
		bookingRepo,
		scheduleService,
		cfg.Booking.DefaultSlotMinutes,
		logger,
		booking.WithSlotHold(redisCache, time.Duration(cfg.Booking.SlotHoldTTLSeconds)*time.Second),
		booking.WithEvents(producer, cfg.Kafka.BookingTopic),
	)

	handlers := bootstrap.Handlers{
		Schedules:    api.NewScheduleHandler(scheduleService),
		Availability: api.NewAvailabilityHandler(availabilityService),
		Bookings:     api.NewBookingHandler(bookingService),
	}

	authMgr := auth.NewManager(cfg.Auth.JWTSecret)

	if err := bootstrap.Run(ctx, cfg, logger, authMgr, redisCache, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
