package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// FanoutWorker consumes the broadcast queue and writes one notification
// record per approved faculty profile. Broadcasts run off the request path
// so the HTTP call returns before the per-recipient writes complete.
type FanoutWorker struct {
	notifications *service.NotificationService
	rdb           *redis.Client
	log           zerolog.Logger
}

// NewFanoutWorker creates a new FanoutWorker.
func NewFanoutWorker(notifications *service.NotificationService, rdb *redis.Client, log zerolog.Logger) *FanoutWorker {
	return &FanoutWorker{
		notifications: notifications,
		rdb:           rdb,
		log:           log.With().Str("component", "fanout_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *FanoutWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *FanoutWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.BroadcastQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	w.handle(ctx, []byte(result[1]))
}

func (w *FanoutWorker) handle(ctx context.Context, raw []byte) {
	var payload service.BroadcastPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	created, err := w.notifications.BroadcastToAllFaculty(ctx, payload.Message)
	if err != nil {
		// No rollback: recipients written before the failure stay notified.
		w.log.Error().Err(err).
			Int("delivered", created).
			Str("requested_by", payload.RequestedBy).
			Msg("Broadcast fanout incomplete")
		return
	}

	w.log.Info().
		Int("recipients", created).
		Str("requested_by", payload.RequestedBy).
		Msg("Broadcast delivered")
}

// drain processes whatever is left in the queue without blocking.
func (w *FanoutWorker) drain(ctx context.Context) {
	for {
		raw, err := w.rdb.LPop(ctx, config.WorkerKey.BroadcastQueue).Result()
		if err != nil {
			return
		}
		w.handle(ctx, []byte(raw))
	}
}
