package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"geotrail/internal/domain"
	"geotrail/pkg/e"

	"github.com/redis/go-redis/v9"
)

// TelemetryQueue buffers telemetry events between the append path and the
// HTTP sender. It only decouples dispatch; a failed POST is never re-queued.
type TelemetryQueue struct {
	client *redis.Client
	key    string
}

func NewTelemetryQueue(client *redis.Client, key string) *TelemetryQueue {
	return &TelemetryQueue{client: client, key: key}
}

func (q *TelemetryQueue) Enqueue(ctx context.Context, ev domain.TelemetryEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *TelemetryQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.TelemetryEvent, error) {
	var ev domain.TelemetryEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
