package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Connect(uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))

	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	err = client.Ping(ctx, nil)

	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, client.Database(database), nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on users.email is what enforces email uniqueness; the repos only
// translate the resulting duplicate-key error.
func EnsureIndexes(ctx context.Context, mdb *mongo.Database) error {
	_, err := mdb.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}

	return nil
}
