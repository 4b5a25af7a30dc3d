package database

import (
	"context"
	"time"

	"realestate-listings/pkg/logger"
	"realestate-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// create indexes for the property document collection. The back-reference is
// unique so one relational record can never own two documents.
func CreatePropertyIndexes(db *mongo.Database, collectionName string) error {
	collection := db.Collection(collectionName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "property_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", collectionName).Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", collectionName).Inc()
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
