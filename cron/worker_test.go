package cron

import (
	"context"
	"errors"
	"testing"

	"tripcheckout/models"
	"tripcheckout/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	records []models.CheckoutRecord
	err     error
}

func (m *memStore) Create(_ context.Context, rec models.CheckoutRecord) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.records = append(m.records, rec)
	return rec.ID, nil
}

func TestHandleCheckoutCreatedStoresRecord(t *testing.T) {
	store := &memStore{}
	rec := models.CheckoutRecord{ID: "rec-1", SessionID: "cs_1", Kind: models.CheckoutKindRide, Reference: "ride-7"}
	task, _, err := tasks.NewCheckoutCreatedTask(rec)
	require.NoError(t, err)

	err = HandleCheckoutCreated(store, zap.NewNop())(context.Background(), task)
	require.NoError(t, err)
	require.Len(t, store.records, 1)
	assert.Equal(t, "ride-7", store.records[0].Reference)
}

func TestHandleCheckoutCreatedSkipsRetryOnBadPayload(t *testing.T) {
	store := &memStore{}
	task := asynq.NewTask(tasks.TypeCheckoutCreated, []byte("{not json"))

	err := HandleCheckoutCreated(store, zap.NewNop())(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, store.records)
}

func TestHandleCheckoutCreatedRetriesStoreFailure(t *testing.T) {
	store := &memStore{err: errors.New("mongo unavailable")}
	task, _, err := tasks.NewCheckoutCreatedTask(models.CheckoutRecord{SessionID: "cs_1"})
	require.NoError(t, err)

	err = HandleCheckoutCreated(store, zap.NewNop())(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}
