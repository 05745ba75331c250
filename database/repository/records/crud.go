package recordsRepo

import (
	"context"
	"errors"
	"time"

	"tripcheckout/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrRecordNotFound = errors.New("checkout record not found")

// Create inserts a checkout record and returns its ID. A record for an
// already stored session is not an error.
func (r *mongoCheckoutRecordRepo) Create(ctx context.Context, record models.CheckoutRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return record.ID, nil
		}
		return "", err
	}
	return record.ID, nil
}

// GetBySessionID returns the record for a provider session id.
func (r *mongoCheckoutRecordRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.CheckoutRecord, error) {
	var record models.CheckoutRecord
	err := r.coll.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByReference lists records for a trip or ride, newest first.
func (r *mongoCheckoutRecordRepo) GetByReference(ctx context.Context, kind, reference string) ([]models.CheckoutRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"kind": kind, "reference": reference}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.CheckoutRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
