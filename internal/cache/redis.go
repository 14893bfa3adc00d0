package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/redis/go-redis/v9"
)

// NotificationDeduper remembers which reservations were already notified, so
// redelivered kafka messages do not send a second confirmation.
type NotificationDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewNotificationDeduper(client *redis.Client, ttl time.Duration) *NotificationDeduper {
	return &NotificationDeduper{client: client, ttl: ttl}
}

// MarkNotified returns true the first time it sees reservationID within the TTL.
func (d *NotificationDeduper) MarkNotified(ctx context.Context, reservationID string) (bool, error) {
	return d.client.SetNX(ctx, notifiedKey(reservationID), time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
}

// Forget drops the marker so a failed delivery can be retried.
func (d *NotificationDeduper) Forget(ctx context.Context, reservationID string) error {
	return d.client.Del(ctx, notifiedKey(reservationID)).Err()
}

func (d *NotificationDeduper) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func notifiedKey(reservationID string) string {
	return fmt.Sprintf("notified:reservation:%s", reservationID)
}
