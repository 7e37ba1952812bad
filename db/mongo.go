// api/db/mongo.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/staffhubhq/staffhub/api/config"
	logger "github.com/staffhubhq/staffhub/api/logging"
)

var (
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
)

func InitMongo() error {
	uri := config.GetString("mongo.uri")
	logger.Info("Connecting to MongoDB at URI", zap.String("uri", uri))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMaxConnIdleTime(30*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	MongoClient = client
	MongoDatabase = client.Database(config.GetString("mongo.database"))

	logger.Info("Successfully connected to MongoDB")
	return nil
}

func CloseMongo() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.Error("Error closing MongoDB connection", zap.Error(err))
		} else {
			logger.Info("MongoDB connection closed successfully")
		}
	}
}

// Admins returns the admins collection.
func Admins() *mongo.Collection {
	return MongoDatabase.Collection("admins")
}

// Departments returns the departments collection.
func Departments() *mongo.Collection {
	return MongoDatabase.Collection("departments")
}

// Employees returns the employees collection.
func Employees() *mongo.Collection {
	return MongoDatabase.Collection("employees")
}
