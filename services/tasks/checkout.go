package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"tripcheckout/models"

	"github.com/hibiken/asynq"
)

const (
	TypeCheckoutCreated = "checkout:created"
	AuditQueue          = "audit"
)

func NewCheckoutCreatedTask(rec models.CheckoutRecord) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCheckoutCreated, b)
	opts := []asynq.Option{
		asynq.Queue(AuditQueue),
		asynq.MaxRetry(5),
		asynq.TaskID(rec.SessionID),
	}
	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuePublisher sends checkout records to the audit queue.
type QueuePublisher struct {
	client Enqueuer
}

func NewQueuePublisher(client Enqueuer) *QueuePublisher {
	return &QueuePublisher{client: client}
}

func (p *QueuePublisher) Publish(ctx context.Context, rec models.CheckoutRecord) error {
	task, opts, err := NewCheckoutCreatedTask(rec)
	if err != nil {
		return fmt.Errorf("build checkout task: %w", err)
	}
	if _, err := p.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue checkout task: %w", err)
	}
	return nil
}
