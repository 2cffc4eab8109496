package bookings

import (
	"strings"
	"testing"
	"time"

	"twohtsounds/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventTitle(t *testing.T) {
	cases := []struct {
		eventType string
		venue     string
		want      string
	}{
		{"wedding", "The Oak Room", "Wedding Reception at The Oak Room"},
		{"corporate", "Hilton Ballroom", "Corporate Event at Hilton Ballroom"},
		{"festival", "Riverside Park", "Festival Performance at Riverside Park"},
		{"private-party", "Smith Residence", "Private Party at Smith Residence"},
		{"bar-gig", "The Dive", "Live Performance at The Dive"},
		{"other", "Town Hall", "Live Performance at Town Hall"},
		{"", "Somewhere", "Live Performance at Somewhere"},
	}

	for _, tc := range cases {
		if got := EventTitle(tc.eventType, tc.venue); got != tc.want {
			t.Errorf("EventTitle(%q, %q) = %q, want %q", tc.eventType, tc.venue, got, tc.want)
		}
	}
}

func TestEventFromBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	booking := models.Booking{
		ID:        primitive.NewObjectID(),
		Name:      "Jane Doe",
		EventDate: time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC),
		EventType: models.EventTypeWedding,
		Venue:     "The Oak Room",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		Message:   "Ceremony at six, first dance at eight.",
	}

	event := eventFromBooking(booking, now)

	if event.Title != "Wedding Reception at The Oak Room" {
		t.Errorf("title = %q", event.Title)
	}
	if event.Public() {
		t.Error("promoted events must start private")
	}
	if event.BookingID != booking.ID.Hex() {
		t.Errorf("bookingId = %q, want %q", event.BookingID, booking.ID.Hex())
	}
	if !event.Date.Equal(booking.EventDate) {
		t.Errorf("date = %v, want %v", event.Date, booking.EventDate)
	}
	if event.Venue != booking.Venue || event.Address != booking.Address ||
		event.City != booking.City || event.State != booking.State {
		t.Error("venue details must copy over verbatim")
	}
	if !strings.Contains(event.Description, booking.Message) {
		t.Errorf("description %q must embed the booking message", event.Description)
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "declined", "completed"} {
		if !models.ValidBookingStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "Pending", "cancelled", "done", "confirmed "} {
		if models.ValidBookingStatus(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestValidateIntake(t *testing.T) {
	valid := func() models.Booking {
		return models.Booking{
			Name:      "Jane",
			Email:     "JANE@Example.com ",
			EventDate: time.Now().AddDate(0, 1, 0),
			EventType: models.EventTypeBarGig,
			Venue:     " The Dive ",
			Address:   "2 Side St",
			City:      "Springfield",
			State:     "IL",
			Message:   "Two sets, start at nine.",
		}
	}

	b := valid()
	if err := validateIntake(&b); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
	if b.Email != "jane@example.com" {
		t.Errorf("email not normalized: %q", b.Email)
	}
	if b.Venue != "The Dive" {
		t.Errorf("venue not trimmed: %q", b.Venue)
	}

	mutations := map[string]func(*models.Booking){
		"name":       func(b *models.Booking) { b.Name = "  " },
		"email":      func(b *models.Booking) { b.Email = "" },
		"date":       func(b *models.Booking) { b.EventDate = time.Time{} },
		"event type": func(b *models.Booking) { b.EventType = "rave" },
		"venue":      func(b *models.Booking) { b.Venue = "" },
		"message":    func(b *models.Booking) { b.Message = "" },
	}
	for name, mutate := range mutations {
		b := valid()
		mutate(&b)
		if err := validateIntake(&b); err == nil {
			t.Errorf("expected rejection for missing %s", name)
		}
	}
}
