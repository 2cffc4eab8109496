package events

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"twohtsounds/apperrors"
	"twohtsounds/db"
	"twohtsounds/models"
	"twohtsounds/mq"
	"twohtsounds/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func validateEvent(e *models.Event) error {
	if e.Title == "" {
		return apperrors.Validation("Title is required")
	}
	if e.Description == "" {
		return apperrors.Validation("Description is required")
	}
	if e.Date.IsZero() {
		return apperrors.Validation("Date is required")
	}
	return nil
}

// CreateEvent inserts an admin-authored show.
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validateEvent(&event); err != nil {
		apperrors.Respond(w, err, "", "Failed to create event")
		return
	}

	if event.IsPublic == nil {
		public := true
		event.IsPublic = &public
	}
	now := time.Now().UTC()
	event.Date = event.Date.UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	result, err := db.EventsCollection.InsertOne(r.Context(), event)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to create event")
		return
	}
	event.ID = result.InsertedID.(primitive.ObjectID)

	go mq.Emit("event-created", models.Index{EntityType: "event", EntityId: event.ID.Hex(), Method: "POST"})

	utils.RespondWithData(w, http.StatusCreated, event)
}

// GetEvent returns a single event by ID.
func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var event models.Event
	err := db.EventsCollection.FindOne(r.Context(), bson.M{"_id": oid}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		apperrors.Respond(w, err, "Event not found", "Failed to fetch event")
		return
	}

	utils.RespondWithData(w, http.StatusOK, event)
}

// EditEvent applies a partial update and returns the updated document.
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	updateFields, err := updateFieldsFromInput(input)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to update event")
		return
	}
	updateFields["updated_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.EventsCollection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updateFields})
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to update event")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	var updated models.Event
	if err := db.EventsCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err != nil {
		apperrors.Respond(w, err, "Event not found", "Failed to fetch updated event")
		return
	}

	go mq.Emit("event-updated", models.Index{EntityType: "event", EntityId: oid.Hex(), Method: "PUT"})

	utils.RespondWithData(w, http.StatusOK, updated)
}

// DeleteEvent removes an event permanently.
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	result, err := db.EventsCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to delete event")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	go mq.Emit("event-deleted", models.Index{EntityType: "event", EntityId: oid.Hex(), Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Event deleted successfully"})
}
