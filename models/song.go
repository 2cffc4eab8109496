package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SongMusician is the denormalized credit embedded in a song. It is a
// snapshot taken at edit time and carries no link to the musicians
// collection.
type SongMusician struct {
	Name       string `json:"name" bson:"name"`
	Instrument string `json:"instrument" bson:"instrument"`
}

type Song struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	ReleaseDate   *time.Time         `json:"releaseDate,omitempty" bson:"releasedate,omitempty"`
	Musicians     []SongMusician     `json:"musicians,omitempty" bson:"musicians,omitempty"`
	AudioURL      string             `json:"audioUrl,omitempty" bson:"audiourl,omitempty"`
	VideoURL      string             `json:"videoUrl,omitempty" bson:"videourl,omitempty"`
	Artist        string             `json:"artist,omitempty" bson:"artist,omitempty"`
	Album         string             `json:"album,omitempty" bson:"album,omitempty"`
	Genre         string             `json:"genre,omitempty" bson:"genre,omitempty"`
	Duration      string             `json:"duration,omitempty" bson:"duration,omitempty"`
	SpotifyURL    string             `json:"spotifyUrl,omitempty" bson:"spotifyurl,omitempty"`
	YoutubeURL    string             `json:"youtubeUrl,omitempty" bson:"youtubeurl,omitempty"`
	SoundcloudURL string             `json:"soundcloudUrl,omitempty" bson:"soundcloudurl,omitempty"`
	Lyrics        string             `json:"lyrics,omitempty" bson:"lyrics,omitempty"`
	ImageURL      string             `json:"imageUrl,omitempty" bson:"imageurl,omitempty"`
	IsOriginal    *bool              `json:"isOriginal" bson:"isoriginal"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}
