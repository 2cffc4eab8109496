package events

import (
	"net/http"

	"twohtsounds/apperrors"
	"twohtsounds/db"
	"twohtsounds/models"
	"twohtsounds/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TicketQR renders the event's ticket URL as a PNG QR code, for posters
// and table cards.
func TicketQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	if event.TicketURL == "" || !event.Public() {
		utils.RespondWithError(w, http.StatusNotFound, "Event has no ticket link")
		return
	}

	png, err := qrcode.Encode(event.TicketURL, qrcode.Medium, 256)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
