package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the collection indexes at startup. The unique name
// indexes on folders and tags are what turn a second insert of the same
// name into a duplicate-key error.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notesCollection := db.Collection("notes")
	foldersCollection := db.Collection("folders")
	tagsCollection := db.Collection("tags")

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().
				SetName("notes_updated_at"),
		},
		{
			Keys: bson.D{{Key: "folder_id", Value: 1}},
			Options: options.Index().
				SetName("notes_folder"),
		},
		// Multikey index over the tags array, used by the list filter and
		// by the $pull cascade on tag deletion.
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().
				SetName("notes_tags"),
		},
	}

	nameUnique := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("name_unique").
				SetUnique(true),
		},
	}

	if _, err := notesCollection.Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}

	if _, err := foldersCollection.Indexes().CreateMany(ctx, nameUnique); err != nil {
		return fmt.Errorf("failed to create folders indexes: %w", err)
	}

	if _, err := tagsCollection.Indexes().CreateMany(ctx, nameUnique); err != nil {
		return fmt.Errorf("failed to create tags indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
