package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingDeclined  = "declined"
	BookingCompleted = "completed"
)

// Booking event types
const (
	EventTypeWedding      = "wedding"
	EventTypeCorporate    = "corporate"
	EventTypeFestival     = "festival"
	EventTypePrivateParty = "private-party"
	EventTypeBarGig       = "bar-gig"
	EventTypeOther        = "other"
)

type Booking struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Email              string             `json:"email" bson:"email"`
	Phone              string             `json:"phone,omitempty" bson:"phone,omitempty"`
	EventDate          time.Time          `json:"eventDate" bson:"eventdate"`
	EventType          string             `json:"eventType" bson:"eventtype"`
	Venue              string             `json:"venue" bson:"venue"`
	Address            string             `json:"address" bson:"address"`
	City               string             `json:"city" bson:"city"`
	State              string             `json:"state" bson:"state"`
	ExpectedAttendance int                `json:"expectedAttendance,omitempty" bson:"expectedattendance,omitempty"`
	Budget             string             `json:"budget,omitempty" bson:"budget,omitempty"`
	Message            string             `json:"message" bson:"message"`
	Status             string             `json:"status" bson:"status"`
	CreatedAt          time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updated_at"`
}

// ValidBookingStatus reports whether s is one of the four booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingDeclined, BookingCompleted:
		return true
	}
	return false
}

// ValidEventType reports whether s is a member of the booking event-type enum.
func ValidEventType(s string) bool {
	switch s {
	case EventTypeWedding, EventTypeCorporate, EventTypeFestival,
		EventTypePrivateParty, EventTypeBarGig, EventTypeOther:
		return true
	}
	return false
}
