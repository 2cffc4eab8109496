package sitesettings

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultSettings is the copy a fresh install starts with.
func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		HeroTitle:        "2HTSounds",
		HeroDescription:  "Experience the power of live music with our unique sound and energy",
		AboutSectionText: "2HTSounds brings together years of musical experience and passion to create unforgettable live performances. Our diverse repertoire spans multiple genres, ensuring there's something for everyone at our shows.",
		AboutPageContent: "Welcome to 2HTSounds! We are a passionate band dedicated to bringing you the best live music experience.",
	}
}

func validateSettings(s *models.SiteSettings) error {
	required := map[string]string{
		"heroTitle":        s.HeroTitle,
		"heroDescription":  s.HeroDescription,
		"aboutSectionText": s.AboutSectionText,
		"aboutPageContent": s.AboutPageContent,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return apperrors.Validation("Field %q is required", field)
		}
	}
	return nil
}

// GetOrCreate returns the singleton settings document, seeding it with
// defaults on first read. The seed is an upsert against the empty filter,
// so concurrent first reads still end up with a single document.
func GetOrCreate(ctx context.Context) (models.SiteSettings, error) {
	defaults := DefaultSettings()
	now := time.Now().UTC()

	update := bson.M{"$setOnInsert": bson.M{
		"herotitle":        defaults.HeroTitle,
		"herodescription":  defaults.HeroDescription,
		"aboutsectiontext": defaults.AboutSectionText,
		"aboutpagecontent": defaults.AboutPageContent,
		"created_at":       now,
		"updated_at":       now,
	}}

	after := options.After
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after)

	var settings models.SiteSettings
	if err := db.SiteSettingsCollection.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&settings); err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// GetSettings serves the public copy, lazily creating the singleton.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	settings, err := GetOrCreate(r.Context())
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to fetch site settings")
		return
	}

	utils.RespondWithData(w, http.StatusOK, settings)
}

// UpdateSettings writes the singleton in place, creating it when absent.
// All four content fields are required; a validation failure leaves any
// existing document untouched.
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input models.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validateSettings(&input); err != nil {
		apperrors.Respond(w, err, "", "Failed to update site settings")
		return
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"herotitle":        input.HeroTitle,
			"herodescription":  input.HeroDescription,
			"aboutsectiontext": input.AboutSectionText,
			"aboutpagecontent": input.AboutPageContent,
			"contactemail":     strings.ToLower(strings.TrimSpace(input.ContactEmail)),
			"contactphone":     strings.TrimSpace(input.ContactPhone),
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after)

	var settings models.SiteSettings
	if err := db.SiteSettingsCollection.FindOneAndUpdate(r.Context(), bson.M{}, update, opts).Decode(&settings); err != nil {
		apperrors.Respond(w, err, "", "Failed to update site settings")
		return
	}

	go mq.Emit("site-settings-updated", models.Index{EntityType: "sitesettings", EntityId: settings.ID.Hex(), Method: "PUT"})

	utils.RespondWithData(w, http.StatusOK, settings)
}
