package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Facility is a bookable amenity gyms can reference (pool, sauna, ...).
// FacilityName is unique across the collection.
type Facility struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FacilityID   string             `bson:"facility_id" json:"facility_id"`
	FacilityName string             `bson:"facility_name" json:"facility_name"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Category groups gyms (crossfit, yoga studio, ...). Same shape and
// lifecycle as Facility.
type Category struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CategoryID   string             `bson:"category_id" json:"category_id"`
	CategoryName string             `bson:"category_name" json:"category_name"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
