package events

import (
	"net/http"
	"time"

	"twohtsounds/apperrors"
	"twohtsounds/db"
	"twohtsounds/filemgr"
	"twohtsounds/models"
	"twohtsounds/mq"
	"twohtsounds/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadImage stores a poster for the event and records its URL.
func UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	url, err := filemgr.SaveImage(r, "image", filemgr.EntityEvent, oid.Hex())
	if err == filemgr.ErrNoFile {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to save image")
		return
	}

	result, err := db.EventsCollection.UpdateOne(r.Context(), bson.M{"_id": oid},
		bson.M{"$set": bson.M{"imageurl": url, "updated_at": time.Now().UTC()}})
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to update event")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	go mq.Emit("event-updated", models.Index{EntityType: "event", EntityId: oid.Hex(), Method: "PUT"})

	utils.RespondWithData(w, http.StatusOK, map[string]string{"imageUrl": url})
}
