package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings is a singleton document holding the editable site copy.
type SiteSettings struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	HeroTitle        string             `json:"heroTitle" bson:"herotitle"`
	HeroDescription  string             `json:"heroDescription" bson:"herodescription"`
	AboutSectionText string             `json:"aboutSectionText" bson:"aboutsectiontext"`
	AboutPageContent string             `json:"aboutPageContent" bson:"aboutpagecontent"`
	ContactEmail     string             `json:"contactEmail,omitempty" bson:"contactemail,omitempty"`
	ContactPhone     string             `json:"contactPhone,omitempty" bson:"contactphone,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}
