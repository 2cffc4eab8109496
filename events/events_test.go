package events

import (
	"errors"
	"testing"
	"time"

	"twohtsounds/apperrors"
	"twohtsounds/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilterPublicOnly(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	filter := listFilter(false, now)

	if filter["ispublic"] != true {
		t.Fatalf("public listing must pin ispublic=true, got %v", filter["ispublic"])
	}
}

func TestListFilterDateCutoffAlwaysApplies(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, includePrivate := range []bool{false, true} {
		filter := listFilter(includePrivate, now)
		clause, ok := filter["date"].(bson.M)
		if !ok {
			t.Fatalf("includePrivate=%v: date clause missing or wrong shape: %#v", includePrivate, filter["date"])
		}
		if clause["$gte"] != now {
			t.Fatalf("includePrivate=%v: expected $gte %v, got %v", includePrivate, now, clause["$gte"])
		}
	}

	if _, present := listFilter(true, now)["ispublic"]; present {
		t.Fatal("includePrivate=true must drop the visibility clause")
	}
}

func TestValidateEventRequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		event models.Event
		valid bool
	}{
		{"complete", models.Event{Title: "Summer Show", Description: "Outdoor set", Date: time.Now()}, true},
		{"missing title", models.Event{Description: "x", Date: time.Now()}, false},
		{"missing description", models.Event{Title: "x", Date: time.Now()}, false},
		{"zero date", models.Event{Title: "x", Description: "y"}, false},
	}

	for _, tc := range cases {
		err := validateEvent(&tc.event)
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.valid {
			var ve *apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
			}
		}
	}
}

func TestUpdateFieldsWhitelist(t *testing.T) {
	fields, err := updateFieldsFromInput(map[string]any{
		"title":     "Renamed",
		"isPublic":  false,
		"bookingId": "should-be-ignored",
		"date":      "2026-09-01T20:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields["title"] != "Renamed" {
		t.Errorf("title not carried: %v", fields["title"])
	}
	if fields["ispublic"] != false {
		t.Errorf("isPublic not carried: %v", fields["ispublic"])
	}
	if _, present := fields["bookingid"]; present {
		t.Error("bookingId must not be client-writable")
	}
	want := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	if !fields["date"].(time.Time).Equal(want) {
		t.Errorf("date not parsed as UTC: %v", fields["date"])
	}
}

func TestUpdateFieldsRejectsBadShapes(t *testing.T) {
	bad := []map[string]any{
		{"title": ""},
		{"isPublic": "yes"},
		{"date": "next friday"},
		{},
	}
	for _, input := range bad {
		if _, err := updateFieldsFromInput(input); err == nil {
			t.Errorf("expected rejection for %v", input)
		}
	}
}
