package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skills is the fixed set of five searchable skill flags. Search terms
// outside this set are ignored, not rejected.
type Skills struct {
	HathaYoga             bool `bson:"hatha_yoga" json:"hatha_yoga"`
	MobilityFlexibility   bool `bson:"mobility_flexibility" json:"mobility_flexibility"`
	StrengthTraining      bool `bson:"strength_training" json:"strength_training"`
	GuidedMeditation      bool `bson:"guided_meditation" json:"guided_meditation"`
	RehabFriendlyWorkouts bool `bson:"rehab_friendly_workouts" json:"rehab_friendly_workouts"`
}

// Certification is an uploaded credential with its file metadata.
type Certification struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	FileURL     string `bson:"file_url,omitempty" json:"file_url,omitempty"`
	FileName    string `bson:"file_name,omitempty" json:"file_name,omitempty"`
	FileSize    string `bson:"file_size,omitempty" json:"file_size,omitempty"`
}

// PreferredMode records how the trainer delivers sessions.
type PreferredMode struct {
	Online   bool `bson:"online" json:"online"`
	InPerson bool `bson:"in_person" json:"in_person"`
}

// ScheduleEntry is one row of the weekly availability grid.
type ScheduleEntry struct {
	Days      []string `bson:"days" json:"days"`
	Checked   bool     `bson:"checked" json:"checked"`
	TimeSlots []string `bson:"time_slots" json:"time_slots"`
}

// Pricing holds per-plan amounts. Weekly and monthly plans are optional.
type Pricing struct {
	PerSession  float64  `bson:"per_session" json:"per_session"`
	WeeklyPlan  *float64 `bson:"weekly_plan,omitempty" json:"weekly_plan,omitempty"`
	MonthlyPlan *float64 `bson:"monthly_plan,omitempty" json:"monthly_plan,omitempty"`
	Currency    string   `bson:"currency" json:"currency"`
}

// Media holds profile assets and their publish state ("draft" or "active").
type Media struct {
	ProfilePhotoURL  string `bson:"profile_photo_url,omitempty" json:"profile_photo_url,omitempty"`
	ProfilePhotoName string `bson:"profile_photo_name,omitempty" json:"profile_photo_name,omitempty"`
	IntroVideoURL    string `bson:"intro_video_url,omitempty" json:"intro_video_url,omitempty"`
	IntroVideoName   string `bson:"intro_video_name,omitempty" json:"intro_video_name,omitempty"`
	PublishStatus    string `bson:"publish_status" json:"publish_status"`
}

// Trainer is the full trainer profile document.
type Trainer struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TrainerID             string             `bson:"trainer_id" json:"trainer_id"`
	FullName              string             `bson:"full_name" json:"full_name"`
	Experience            int                `bson:"experience" json:"experience"`
	PrimarySpecialization string             `bson:"primary_specialization" json:"primary_specialization"`
	Languages             []string           `bson:"languages" json:"languages"`
	ShortBio              string             `bson:"short_bio" json:"short_bio"`
	Skills                Skills             `bson:"skills" json:"skills"`
	Certifications        []Certification    `bson:"certifications" json:"certifications"`
	PreferredMode         PreferredMode      `bson:"preferred_mode" json:"preferred_mode"`
	WeeklySchedule        []ScheduleEntry    `bson:"weekly_schedule" json:"weekly_schedule"`
	Pricing               Pricing            `bson:"pricing" json:"pricing"`
	Media                 Media              `bson:"media" json:"media"`
	Status                string             `bson:"status" json:"status"`
	CreatedAt             time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time          `bson:"updated_at" json:"updated_at"`
}

// TrainerPatch carries a partial trainer update; only fields present in the
// request body overwrite the stored document.
type TrainerPatch struct {
	FullName              Optional[string]          `json:"full_name"`
	Experience            Optional[int]             `json:"experience"`
	PrimarySpecialization Optional[string]          `json:"primary_specialization"`
	Languages             Optional[[]string]        `json:"languages"`
	ShortBio              Optional[string]          `json:"short_bio"`
	Skills                Optional[Skills]          `json:"skills"`
	Certifications        Optional[[]Certification] `json:"certifications"`
	PreferredMode         Optional[PreferredMode]   `json:"preferred_mode"`
	WeeklySchedule        Optional[[]ScheduleEntry] `json:"weekly_schedule"`
	Pricing               Optional[Pricing]         `json:"pricing"`
	Media                 Optional[Media]           `json:"media"`
	Status                Optional[string]          `json:"status"`
}
