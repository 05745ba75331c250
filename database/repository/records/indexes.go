package recordsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes makes sessionId unique so redelivered audit tasks stay idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(checkoutRecordsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_session"),
		},
		{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "reference", Value: 1}},
			Options: options.Index().SetName("kind_reference"),
		},
	})
	return err
}
