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

type TagsRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagsRepo(db *mongo.Database) *TagsRepo {
	return &TagsRepo{
		MongoCollection: db.Collection("tags"),
	}
}

// FindTags retrieves all tags sorted by name, case-insensitive.
func (r *TagsRepo) FindTags(ctx context.Context) ([]*model.Tag, error) {
	defer middleware.TrackDBOperation("find", "tags").ObserveDuration()

	opts := options.Find().
		SetCollation(&options.Collation{Locale: "en"}).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []*model.Tag{}
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagsRepo) FindTagByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	defer middleware.TrackDBOperation("find_one", "tags").ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagsRepo) CreateTag(ctx context.Context, tag *model.Tag) error {
	defer middleware.TrackDBOperation("insert", "tags").ObserveDuration()

	now := time.Now().UTC()
	tag.CreatedAt = now
	tag.UpdatedAt = now

	result, err := r.MongoCollection.InsertOne(ctx, tag)
	if err != nil {
		return err
	}
	tag.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *TagsRepo) UpdateTag(ctx context.Context, id primitive.ObjectID, name string) (*model.Tag, error) {
	defer middleware.TrackDBOperation("update", "tags").ObserveDuration()

	set := bson.M{
		"name":       name,
		"updated_at": time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tag model.Tag
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagsRepo) DeleteTag(ctx context.Context, id primitive.ObjectID) (bool, error) {
	defer middleware.TrackDBOperation("delete", "tags").ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
