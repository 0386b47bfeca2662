package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gym describes a listed gym. CategoryID and Facilities are soft string
// references; no referential integrity is enforced against the category or
// facility collections. The contact/booking/hours/membership sub-documents
// have client-defined shapes and are persisted as-is.
type Gym struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	GymID             string             `bson:"gym_id" json:"gym_id"`
	GymName           string             `bson:"gym_name" json:"gym_name"` // Unique
	CategoryID        string             `bson:"category_id" json:"category_id"`
	City              string             `bson:"city" json:"city"`
	Distance          float64            `bson:"distance" json:"distance"`
	Address           string             `bson:"address" json:"address"`
	Contact           map[string]any     `bson:"contact" json:"contact"`
	Booking           map[string]any     `bson:"booking" json:"booking"`
	About             string             `bson:"about" json:"about"`
	Facilities        []string           `bson:"facilities" json:"facilities"`
	FacilityNotes     string             `bson:"facility_notes" json:"facility_notes"`
	OpeningHours      map[string]any     `bson:"opening_hours" json:"opening_hours"`
	MembershipOptions map[string]any     `bson:"membership_options" json:"membership_options"`
	LogoURL           string             `bson:"logo_url" json:"logo_url"`
	CoverImageURL     string             `bson:"cover_image_url" json:"cover_image_url"`
	Gallery           []string           `bson:"gallery" json:"gallery"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// GymPatch carries a partial gym update. A field overwrites its document
// counterpart only when it was present in the request body; see Optional.
type GymPatch struct {
	GymName           Optional[string]         `json:"gym_name"`
	CategoryID        Optional[string]         `json:"category_id"`
	City              Optional[string]         `json:"city"`
	Distance          Optional[float64]        `json:"distance"`
	Address           Optional[string]         `json:"address"`
	Contact           Optional[map[string]any] `json:"contact"`
	Booking           Optional[map[string]any] `json:"booking"`
	About             Optional[string]         `json:"about"`
	Facilities        Optional[[]string]       `json:"facilities"`
	FacilityNotes     Optional[string]         `json:"facility_notes"`
	OpeningHours      Optional[map[string]any] `json:"opening_hours"`
	MembershipOptions Optional[map[string]any] `json:"membership_options"`
	LogoURL           Optional[string]         `json:"logo_url"`
	CoverImageURL     Optional[string]         `json:"cover_image_url"`
	Gallery           Optional[[]string]       `json:"gallery"`
	Status            Optional[string]         `json:"status"`
}
