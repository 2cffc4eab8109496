package musicians

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
	"twohtsounds/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type memberInput struct {
	Name       string `json:"name"`
	Instrument string `json:"instrument"`
}

func (in *memberInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Instrument = strings.TrimSpace(in.Instrument)
	if in.Name == "" || in.Instrument == "" {
		return apperrors.Validation("Name and instrument are required")
	}
	return nil
}

// GetMusicians lists the full roster, sorted by name.
func GetMusicians(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	roster, err := utils.FindAndDecode[models.Musician](ctx, db.MusiciansCollection, bson.M{}, opts)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to fetch musicians")
		return
	}

	utils.RespondWithData(w, http.StatusOK, roster)
}

// AddMusician upserts by the trimmed (name, instrument) pair. Repeated
// calls with the same pair return the existing record unchanged; the
// unique compound index backs this up against concurrent callers.
func AddMusician(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input memberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	musician, err := Upsert(r.Context(), input)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to create musician")
		return
	}

	go mq.Emit("musician-upserted", models.Index{EntityType: "musician", EntityId: musician.ID.Hex(), Method: "POST"})

	utils.RespondWithData(w, http.StatusCreated, musician)
}

// Upsert implements the idempotent add. The update sets nothing on match,
// so an existing record comes back byte-for-byte as stored.
func Upsert(ctx context.Context, input memberInput) (models.Musician, error) {
	if err := input.normalize(); err != nil {
		return models.Musician{}, err
	}

	now := time.Now().UTC()
	filter := bson.M{"name": input.Name, "instrument": input.Instrument}
	update := bson.M{"$setOnInsert": bson.M{
		"name":       input.Name,
		"instrument": input.Instrument,
		"created_at": now,
		"updated_at": now,
	}}

	after := options.After
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after)

	var musician models.Musician
	if err := db.MusiciansCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&musician); err != nil {
		return models.Musician{}, err
	}
	return musician, nil
}

// UpdateMusician renames a member or changes their instrument.
func UpdateMusician(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid musician ID")
		return
	}

	var input memberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := input.normalize(); err != nil {
		apperrors.Respond(w, err, "", "Failed to update musician")
		return
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var musician models.Musician
	err := db.MusiciansCollection.FindOneAndUpdate(r.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": input.Name, "instrument": input.Instrument, "updated_at": time.Now().UTC()}},
		opts,
	).Decode(&musician)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Musician not found")
		return
	}
	if err != nil {
		apperrors.Respond(w, err, "Musician not found", "Failed to update musician")
		return
	}

	go mq.Emit("musician-updated", models.Index{EntityType: "musician", EntityId: oid.Hex(), Method: "PUT"})

	utils.RespondWithData(w, http.StatusOK, musician)
}

// DeleteMusician removes a member from the roster.
func DeleteMusician(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid musician ID")
		return
	}

	result, err := db.MusiciansCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to delete musician")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Musician not found")
		return
	}

	go mq.Emit("musician-deleted", models.Index{EntityType: "musician", EntityId: oid.Hex(), Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Musician deleted successfully"})
}
