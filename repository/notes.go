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

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{
		MongoCollection: db.Collection("notes"),
	}
}

// NoteFilter is a conjunction of optional predicates.
type NoteFilter struct {
	SearchTerm string
	FolderID   *primitive.ObjectID
	TagID      *primitive.ObjectID
}

// FindNotes retrieves all notes matching the filter, most recently updated
// first. No matches is an empty slice, never an error.
func (r *NotesRepo) FindNotes(ctx context.Context, filter NoteFilter) ([]*model.Note, error) {
	defer middleware.TrackDBOperation("find", "notes").ObserveDuration()

	query := bson.M{}
	if filter.SearchTerm != "" {
		query["title"] = bson.M{"$regex": filter.SearchTerm, "$options": "i"}
	}
	if filter.FolderID != nil {
		query["folder_id"] = *filter.FolderID
	}
	if filter.TagID != nil {
		query["tags"] = *filter.TagID
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// FindNoteByID retrieves a note. A missing document is (nil, nil); an error
// means the storage engine failed.
func (r *NotesRepo) FindNoteByID(ctx context.Context, id primitive.ObjectID) (*model.Note, error) {
	defer middleware.TrackDBOperation("find_one", "notes").ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// CreateNote inserts a new note, assigning id and timestamps.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	defer middleware.TrackDBOperation("insert", "notes").ObserveDuration()

	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	result, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		return err
	}
	note.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateNote applies the given $set fields and returns the updated document,
// refreshing updated_at. A missing document is (nil, nil).
func (r *NotesRepo) UpdateNote(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Note, error) {
	defer middleware.TrackDBOperation("update", "notes").ObserveDuration()

	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes a note, reporting whether anything existed at that id.
func (r *NotesRepo) DeleteNote(ctx context.Context, id primitive.ObjectID) (bool, error) {
	defer middleware.TrackDBOperation("delete", "notes").ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// PullTagFromNotes removes every occurrence of tagID from the tags array of
// every note containing it and returns how many notes were touched. Notes
// not referencing the tag are left alone.
func (r *NotesRepo) PullTagFromNotes(ctx context.Context, tagID primitive.ObjectID) (int64, error) {
	defer middleware.TrackDBOperation("pull_tag", "notes").ObserveDuration()

	result, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"tags": tagID},
		bson.M{"$pull": bson.M{"tags": tagID}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
