package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/artwalls/artwalls/config"
	"github.com/artwalls/artwalls/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	scheduleTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, scheduleTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		scheduleTTL: scheduleTTL,
	}
}

func (c *RedisCache) GetSchedule(ctx context.Context, venueID string) (*domain.VenueSchedule, error) {
	data, err := c.client.Get(ctx, scheduleKey(venueID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var schedule domain.VenueSchedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *RedisCache) SetSchedule(ctx context.Context, schedule *domain.VenueSchedule) error {
	payload, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, scheduleKey(schedule.VenueID), payload, c.scheduleTTL).Err()
}

// InvalidateSchedule must run on every schedule write; a stale cached
// interval would corrupt end-instant computation for new bookings.
func (c *RedisCache) InvalidateSchedule(ctx context.Context, venueID string) error {
	return c.client.Del(ctx, scheduleKey(venueID)).Err()
}

// AcquireSlotHold is a short fast-path lock on one venue slot. The DB
// unique constraint stays authoritative; this only cheapens the common
// race by failing the loser before it reaches the insert.
func (c *RedisCache) AcquireSlotHold(ctx context.Context, venueID string, startAt time.Time, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, slotHoldKey(venueID, startAt), "held", ttl).Result()
}

func (c *RedisCache) ReleaseSlotHold(ctx context.Context, venueID string, startAt time.Time) error {
	return c.client.Del(ctx, slotHoldKey(venueID, startAt)).Err()
}

// Allow implements a fixed-window request counter for rate limiting.
func (c *RedisCache) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.client.Incr(ctx, rateKey(key)).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, rateKey(key), window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

func scheduleKey(venueID string) string {
	return fmt.Sprintf("cache:schedule:%s", venueID)
}

func slotHoldKey(venueID string, startAt time.Time) string {
	return fmt.Sprintf("hold:venue:%s:slot:%d", venueID, startAt.Unix())
}

func rateKey(key string) string {
	return fmt.Sprintf("rate:%s", key)
}
