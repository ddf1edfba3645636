package repository

import (
	"context"
	"time"

	"main/middleware"
	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoldersRepo struct {
	MongoCollection *mongo.Collection
}

func GetFoldersRepo(db *mongo.Database) *FoldersRepo {
	return &FoldersRepo{
		MongoCollection: db.Collection("folders"),
	}
}

// FindFolders retrieves all folders sorted by name, case-insensitive.
func (r *FoldersRepo) FindFolders(ctx context.Context) ([]*model.Folder, error) {
	defer middleware.TrackDBOperation("find", "folders").ObserveDuration()

	opts := options.Find().
		SetCollation(&options.Collation{Locale: "en"}).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	folders := []*model.Folder{}
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FoldersRepo) FindFolderByID(ctx context.Context, id primitive.ObjectID) (*model.Folder, error) {
	defer middleware.TrackDBOperation("find_one", "folders").ObserveDuration()

	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

// CreateFolder inserts a new folder. The unique index on name surfaces a
// duplicate as a driver duplicate-key error for the classifier.
func (r *FoldersRepo) CreateFolder(ctx context.Context, folder *model.Folder) error {
	defer middleware.TrackDBOperation("insert", "folders").ObserveDuration()

	now := time.Now().UTC()
	folder.CreatedAt = now
	folder.UpdatedAt = now

	result, err := r.MongoCollection.InsertOne(ctx, folder)
	if err != nil {
		return err
	}
	folder.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateFolder renames a folder and returns the updated document, or
// (nil, nil) when the id resolves to nothing.
func (r *FoldersRepo) UpdateFolder(ctx context.Context, id primitive.ObjectID, name string) (*model.Folder, error) {
	defer middleware.TrackDBOperation("update", "folders").ObserveDuration()

	set := bson.M{
		"name":       name,
		"updated_at": time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var folder model.Folder
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder. Notes referencing it are deliberately left
// untouched; an orphaned folder_id on a note is tolerated.
func (r *FoldersRepo) DeleteFolder(ctx context.Context, id primitive.ObjectID) (bool, error) {
	defer middleware.TrackDBOperation("delete", "folders").ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
