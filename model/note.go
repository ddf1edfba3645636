package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a document in the "notes" collection. FolderID is optional and is
// not guaranteed to resolve to a live folder (folder deletion leaves
// references behind). Tags may contain duplicates and keeps insertion order.
type Note struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Content   string               `bson:"content,omitempty" json:"content,omitempty"`
	FolderID  *primitive.ObjectID  `bson:"folder_id,omitempty" json:"folder_id,omitempty"`
	Tags      []primitive.ObjectID `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
}
