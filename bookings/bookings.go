package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"twohtsounds/apperrors"
	"twohtsounds/db"
	"twohtsounds/models"
	"twohtsounds/mq"
	"twohtsounds/notify"
	"twohtsounds/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func validateIntake(b *models.Booking) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	b.Venue = strings.TrimSpace(b.Venue)

	switch {
	case b.Name == "":
		return apperrors.Validation("Name is required")
	case b.Email == "":
		return apperrors.Validation("Email is required")
	case b.EventDate.IsZero():
		return apperrors.Validation("Event date is required")
	case !models.ValidEventType(b.EventType):
		return apperrors.Validation("Invalid event type %q", b.EventType)
	case b.Venue == "":
		return apperrors.Validation("Venue is required")
	case b.Address == "":
		return apperrors.Validation("Address is required")
	case b.City == "":
		return apperrors.Validation("City is required")
	case b.State == "":
		return apperrors.Validation("State is required")
	case b.Message == "":
		return apperrors.Validation("Message is required")
	}
	return nil
}

// CreateBooking is the public intake endpoint. Status is always pending on
// entry regardless of what the caller sends.
func CreateBooking(hub *notify.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var booking models.Booking
		if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
			return
		}

		if err := validateIntake(&booking); err != nil {
			apperrors.Respond(w, err, "", "Failed to create booking")
			return
		}

		now := time.Now().UTC()
		booking.ID = primitive.NilObjectID
		booking.Status = models.BookingPending
		booking.EventDate = booking.EventDate.UTC()
		booking.CreatedAt = now
		booking.UpdatedAt = now

		result, err := db.BookingsCollection.InsertOne(r.Context(), booking)
		if err != nil {
			apperrors.Respond(w, err, "", "Failed to create booking")
			return
		}
		booking.ID = result.InsertedID.(primitive.ObjectID)

		go mq.Emit("booking-created", models.Index{EntityType: "booking", EntityId: booking.ID.Hex(), Method: "POST"})
		pushNotification(hub, notify.Notification{
			Kind:      "booking-created",
			EntityID:  booking.ID.Hex(),
			Message:   "New booking request from " + booking.Name + " for " + booking.Venue,
			Timestamp: now.Unix(),
		})

		utils.RespondWithData(w, http.StatusCreated, booking)
	}
}

// GetBookings lists all bookings for the admin panel, newest first.
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	bookingList, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{}, opts)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to fetch bookings")
		return
	}

	utils.RespondWithData(w, http.StatusOK, bookingList)
}

// GetBooking returns one booking by ID.
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"_id": oid}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		apperrors.Respond(w, err, "Booking not found", "Failed to fetch booking")
		return
	}

	utils.RespondWithData(w, http.StatusOK, booking)
}

// UpdateBooking is the status-transition entry point.
func UpdateBooking(hub *notify.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		var input struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
			return
		}

		booking, err := UpdateStatus(r.Context(), ps.ByName("id"), input.Status)
		if err != nil {
			apperrors.Respond(w, err, "Booking not found", "Failed to update booking")
			return
		}

		go mq.Emit("booking-updated", models.Index{EntityType: "booking", EntityId: booking.ID.Hex(), Method: "PUT"})
		pushNotification(hub, notify.Notification{
			Kind:      "booking-" + booking.Status,
			EntityID:  booking.ID.Hex(),
			Message:   "Booking for " + booking.Venue + " is now " + booking.Status,
			Timestamp: time.Now().Unix(),
		})

		utils.RespondWithData(w, http.StatusOK, booking)
	}
}

// DeleteBooking removes a booking permanently.
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	result, err := db.BookingsCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to delete booking")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	go mq.Emit("booking-deleted", models.Index{EntityType: "booking", EntityId: oid.Hex(), Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Booking deleted successfully"})
}

func pushNotification(hub *notify.Hub, note notify.Notification) {
	if hub == nil {
		return
	}
	if data, err := json.Marshal(note); err == nil {
		hub.Broadcast(data)
	}
}
