package usecase

import (
	"context"
	"testing"
	"time"

	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func setupTestDB(t *testing.T) (*mongo.Database, func()) {
	t.Helper()

	uri := utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("MongoDB not available: %v", err)
	}

	db := client.Database("notable_usecase_test")
	if err := db.Drop(context.Background()); err != nil {
		t.Fatalf("failed to reset test database: %v", err)
	}
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("failed to setup indexes: %v", err)
	}

	cleanup := func() {
		if err := db.Drop(context.Background()); err != nil {
			t.Errorf("failed to drop test database: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("failed to disconnect: %v", err)
		}
	}
	return db, cleanup
}
