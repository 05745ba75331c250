package recordsRepo

import (
	"context"

	"tripcheckout/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const checkoutRecordsCollection = "checkout_records"

type CheckoutRecordRepository interface {
	Create(ctx context.Context, record models.CheckoutRecord) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.CheckoutRecord, error)
	GetByReference(ctx context.Context, kind, reference string) ([]models.CheckoutRecord, error)
}

type mongoCheckoutRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoCheckoutRecordRepo returns a CheckoutRecordRepository backed by db.
func NewMongoCheckoutRecordRepo(db *mongo.Database) CheckoutRecordRepository {
	return &mongoCheckoutRecordRepo{
		coll: db.Collection(checkoutRecordsCollection),
	}
}
