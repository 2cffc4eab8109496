package bookings

import (
	"context"
	"fmt"
	"log"
	"time"

	"twohtsounds/apperrors"
	"twohtsounds/db"
	"twohtsounds/models"
	"twohtsounds/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// eventTypeLabels maps a booking's event type onto the public-facing
// title prefix of the calendar event it becomes.
var eventTypeLabels = map[string]string{
	models.EventTypeWedding:      "Wedding Reception",
	models.EventTypeCorporate:    "Corporate Event",
	models.EventTypeFestival:     "Festival Performance",
	models.EventTypePrivateParty: "Private Party",
	models.EventTypeBarGig:       "Live Performance",
}

const defaultEventLabel = "Live Performance"

// EventTitle derives the calendar event title for a confirmed booking.
func EventTitle(eventType, venue string) string {
	label, ok := eventTypeLabels[eventType]
	if !ok {
		label = defaultEventLabel
	}
	return label + " at " + venue
}

// eventFromBooking synthesizes the private calendar event a confirmed
// booking turns into. Details copy over verbatim; the event starts hidden
// until the admin flips it public.
func eventFromBooking(b models.Booking, now time.Time) models.Event {
	private := false
	return models.Event{
		Title:       EventTitle(b.EventType, b.Venue),
		Description: fmt.Sprintf("2HTSounds live performance at %s. %s", b.Venue, b.Message),
		Date:        b.EventDate,
		Venue:       b.Venue,
		Address:     b.Address,
		City:        b.City,
		State:       b.State,
		IsPublic:    &private,
		BookingID:   b.ID.Hex(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateStatus validates and applies a status change. Transitioning into
// confirmed also creates the booking's calendar event, at most once; that
// side effect is log-and-continue and never fails the status update.
func UpdateStatus(ctx context.Context, id, status string) (models.Booking, error) {
	oid, ok := utils.ParseObjectID(id)
	if !ok {
		return models.Booking{}, apperrors.Validation("Invalid booking ID")
	}
	if !models.ValidBookingStatus(status) {
		return models.Booking{}, apperrors.Validation("Invalid status value %q", status)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var booking models.Booking
	err := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		opts,
	).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return models.Booking{}, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return models.Booking{}, err
	}

	if status == models.BookingConfirmed {
		if err := promoteToEvent(ctx, booking); err != nil {
			log.Printf("event creation for booking %s failed: %v", id, err)
		}
	}

	return booking, nil
}

// promoteToEvent inserts the calendar event for a confirmed booking via a
// conditional upsert keyed on bookingid. The unique sparse index on that
// field makes re-confirmation, and even concurrent confirmation, a no-op.
func promoteToEvent(ctx context.Context, booking models.Booking) error {
	event := eventFromBooking(booking, time.Now().UTC())

	doc, err := bson.Marshal(event)
	if err != nil {
		return err
	}
	var setOnInsert bson.M
	if err := bson.Unmarshal(doc, &setOnInsert); err != nil {
		return err
	}
	delete(setOnInsert, "_id")

	upsert := options.Update().SetUpsert(true)
	_, err = db.EventsCollection.UpdateOne(ctx,
		bson.M{"bookingid": booking.ID.Hex()},
		bson.M{"$setOnInsert": setOnInsert},
		upsert,
	)
	return err
}
