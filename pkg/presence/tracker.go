// Package presence keeps a best-effort online/offline view in Redis next to
// the durable status column on profiles. Redis being down never fails a login.
package presence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	onlineKeyPrefix = "presence:online:"
	lastSeenKey     = "presence:last_seen"

	// An online mark expires if the client stops refreshing it.
	onlineTTL = 5 * time.Minute
)

type Tracker struct {
	rdb *redis.Client
}

func NewTracker(rdb *redis.Client) *Tracker {
	return &Tracker{rdb: rdb}
}

func (t *Tracker) MarkOnline(ctx context.Context, userId uuid.UUID) error {
	return t.rdb.Set(ctx, onlineKeyPrefix+userId.String(), "1", onlineTTL).Err()
}

func (t *Tracker) MarkOffline(ctx context.Context, userId uuid.UUID) error {
	if err := t.rdb.Del(ctx, onlineKeyPrefix+userId.String()).Err(); err != nil {
		return err
	}
	return t.rdb.HSet(ctx, lastSeenKey, userId.String(), time.Now().Format(time.RFC3339)).Err()
}
