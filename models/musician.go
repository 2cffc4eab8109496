package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Musician struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Instrument string             `json:"instrument" bson:"instrument"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}
