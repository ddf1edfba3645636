package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Folder name carries a unique index, see repository.SetupIndexes.
type Folder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
