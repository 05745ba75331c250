package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"tripcheckout/models"
	"tripcheckout/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RecordStore persists audit records.
type RecordStore interface {
	Create(ctx context.Context, record models.CheckoutRecord) (string, error)
}

// AuditWorker consumes checkout:created tasks and stores them.
type AuditWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewAuditWorker builds a worker on the given Redis connection.
func NewAuditWorker(redisOpt asynq.RedisClientOpt, store RecordStore, logger *zap.Logger) *AuditWorker {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				tasks.AuditQueue: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCheckoutCreated, HandleCheckoutCreated(store, logger))

	return &AuditWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background.
func (w *AuditWorker) Start() error {
	w.logger.Info("starting checkout audit worker")
	return w.srv.Start(w.mux)
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *AuditWorker) Shutdown() {
	w.srv.Shutdown()
	w.logger.Info("checkout audit worker stopped")
}

func HandleCheckoutCreated(store RecordStore, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var rec models.CheckoutRecord
		if err := json.Unmarshal(task.Payload(), &rec); err != nil {
			logger.Error("invalid checkout task payload", zap.Error(err))
			return fmt.Errorf("decode checkout record: %v: %w", err, asynq.SkipRetry)
		}

		id, err := store.Create(ctx, rec)
		if err != nil {
			logger.Error("failed to store checkout record",
				zap.String("sessionId", rec.SessionID),
				zap.Error(err),
			)
			return err
		}
		logger.Debug("checkout record stored", zap.String("id", id), zap.String("sessionId", rec.SessionID))
		return nil
	}
}
