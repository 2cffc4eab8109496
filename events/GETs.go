package events

import (
	"context"
	"net/http"
	"time"

	"twohtsounds/apperrors"
	"twohtsounds/db"
	"twohtsounds/middleware"
	"twohtsounds/models"
	"twohtsounds/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listFilter builds the shows query. Public callers only see public
// upcoming events; administrators may opt into private ones, but the
// upcoming cutoff applies either way.
func listFilter(includePrivate bool, now time.Time) bson.M {
	filter := bson.M{"date": bson.M{"$gte": now}}
	if !includePrivate {
		filter["ispublic"] = true
	}
	return filter
}

// GetEvents lists upcoming events ascending by date. ?includePrivate=true
// widens the listing to private events and requires an admin token.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	includePrivate := r.URL.Query().Get("includePrivate") == "true"
	if includePrivate && !middleware.IsAdminRequest(r) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Admin token required for private events")
		return
	}

	filter := listFilter(includePrivate, time.Now().UTC())
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	eventList, err := utils.FindAndDecode[models.Event](ctx, db.EventsCollection, filter, opts)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to fetch events")
		return
	}

	utils.RespondWithData(w, http.StatusOK, eventList)
}
