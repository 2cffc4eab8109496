package songs

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// normalizeSong trims the title and the embedded musician credits and
// applies the isOriginal default. The credits are a denormalized snapshot;
// they are cleaned here, not reconciled with the musicians collection.
func normalizeSong(s *models.Song) error {
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		return apperrors.Validation("Title is required")
	}

	cleaned := s.Musicians[:0]
	for _, m := range s.Musicians {
		m.Name = strings.TrimSpace(m.Name)
		m.Instrument = strings.TrimSpace(m.Instrument)
		if m.Name == "" && m.Instrument == "" {
			continue
		}
		if m.Name == "" || m.Instrument == "" {
			return apperrors.Validation("Each credited musician needs a name and an instrument")
		}
		cleaned = append(cleaned, m)
	}
	s.Musicians = cleaned

	if s.IsOriginal == nil {
		original := true
		s.IsOriginal = &original
	}
	return nil
}

// GetSongs lists the repertoire, newest first.
func GetSongs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	songList, err := utils.FindAndDecode[models.Song](ctx, db.SongsCollection, bson.M{}, opts)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to fetch songs")
		return
	}

	utils.RespondWithData(w, http.StatusOK, songList)
}

// GetSong returns one song by ID.
func GetSong(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	var song models.Song
	err := db.SongsCollection.FindOne(r.Context(), bson.M{"_id": oid}).Decode(&song)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Song not found")
		return
	}
	if err != nil {
		apperrors.Respond(w, err, "Song not found", "Failed to fetch song")
		return
	}

	utils.RespondWithData(w, http.StatusOK, song)
}

// CreateSong inserts a song into the repertoire.
func CreateSong(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var song models.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := normalizeSong(&song); err != nil {
		apperrors.Respond(w, err, "", "Failed to create song")
		return
	}

	now := time.Now().UTC()
	song.ID = primitive.NilObjectID
	song.CreatedAt = now
	song.UpdatedAt = now

	result, err := db.SongsCollection.InsertOne(r.Context(), song)
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to create song")
		return
	}
	song.ID = result.InsertedID.(primitive.ObjectID)

	go mq.Emit("song-created", models.Index{EntityType: "song", EntityId: song.ID.Hex(), Method: "POST"})

	utils.RespondWithData(w, http.StatusCreated, song)
}

// UpdateSong replaces the editable fields and returns the updated song.
func UpdateSong(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	var song models.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := normalizeSong(&song); err != nil {
		apperrors.Respond(w, err, "", "Failed to update song")
		return
	}

	song.ID = oid
	song.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":         song.Title,
		"description":   song.Description,
		"releasedate":   song.ReleaseDate,
		"musicians":     song.Musicians,
		"audiourl":      song.AudioURL,
		"videourl":      song.VideoURL,
		"artist":        song.Artist,
		"album":         song.Album,
		"genre":         song.Genre,
		"duration":      song.Duration,
		"spotifyurl":    song.SpotifyURL,
		"youtubeurl":    song.YoutubeURL,
		"soundcloudurl": song.SoundcloudURL,
		"lyrics":        song.Lyrics,
		"imageurl":      song.ImageURL,
		"isoriginal":    song.IsOriginal,
		"updated_at":    song.UpdatedAt,
	}}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.Song
	err := db.SongsCollection.FindOneAndUpdate(r.Context(), bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Song not found")
		return
	}
	if err != nil {
		apperrors.Respond(w, err, "Song not found", "Failed to update song")
		return
	}

	go mq.Emit("song-updated", models.Index{EntityType: "song", EntityId: oid.Hex(), Method: "PUT"})

	utils.RespondWithData(w, http.StatusOK, updated)
}

// DeleteSong removes a song from the repertoire.
func DeleteSong(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	result, err := db.SongsCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		apperrors.Respond(w, err, "", "Failed to delete song")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Song not found")
		return
	}

	go mq.Emit("song-deleted", models.Index{EntityType: "song", EntityId: oid.Hex(), Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Song deleted successfully"})
}
