package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Date        time.Time          `json:"date" bson:"date"`
	Venue       string             `json:"venue,omitempty" bson:"venue,omitempty"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	City        string             `json:"city,omitempty" bson:"city,omitempty"`
	State       string             `json:"state,omitempty" bson:"state,omitempty"`
	TicketURL   string             `json:"ticketUrl,omitempty" bson:"ticketurl,omitempty"`
	Price       string             `json:"price,omitempty" bson:"price,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageurl,omitempty"`
	IsPublic    *bool              `json:"isPublic" bson:"ispublic"`
	BookingID   string             `json:"bookingId,omitempty" bson:"bookingid,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Public reports the visibility flag, defaulting to true when unset.
func (e *Event) Public() bool {
	return e.IsPublic == nil || *e.IsPublic
}
