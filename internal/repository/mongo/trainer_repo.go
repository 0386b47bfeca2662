package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainerCollectionName = "trainers"

// The searchable skill flags. Search terms outside this set contribute no
// filter clause; they are ignored, not rejected.
var knownSkillFields = map[string]bool{
	"hatha_yoga":              true,
	"mobility_flexibility":    true,
	"strength_training":       true,
	"guided_meditation":       true,
	"rehab_friendly_workouts": true,
}

// mongoTrainerRepository implements repository.TrainerRepository.
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new instance of mongoTrainerRepository.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Create inserts a trainer with a generated trainer_id, the "active" default
// status and both timestamps.
func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (string, error) {
	if trainer.FullName == "" {
		return "", errors.New("trainer full name is required")
	}

	trainer.ID = primitive.NewObjectID()
	if trainer.TrainerID == "" {
		trainer.TrainerID = primitive.NewObjectID().Hex()
	}
	if trainer.Status == "" {
		trainer.Status = domain.StatusActive
	}
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, trainer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrConflict
		}
		return "", err
	}

	return trainer.TrainerID, nil
}

// GetByID retrieves a trainer by its generated trainer_id.
func (r *mongoTrainerRepository) GetByID(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"trainer_id": trainerID}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetByNameAndSpecialization retrieves a trainer matching both fields. Used
// as the advisory duplicate pre-check before Create.
func (r *mongoTrainerRepository) GetByNameAndSpecialization(ctx context.Context, fullName, specialization string) (*domain.Trainer, error) {
	filter := bson.M{
		"full_name":              fullName,
		"primary_specialization": specialization,
	}

	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, filter).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// List returns one page of trainers matching the filter plus the total
// count. The count covers the whole filter, independent of the window.
func (r *mongoTrainerRepository) List(ctx context.Context, filter repository.TrainerFilter, page, limit int) ([]domain.Trainer, int64, error) {
	query := buildTrainerFilter(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(page-1) * int64(limit)
	findOpts := options.Find().SetSkip(skip).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var trainers []domain.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, 0, err
	}
	return trainers, total, nil
}

// Update applies a partial trainer update; the update timestamp is always set.
func (r *mongoTrainerRepository) Update(ctx context.Context, trainerID string, patch *domain.TrainerPatch) error {
	set := buildTrainerPatch(patch)

	result, err := r.collection.UpdateOne(ctx, bson.M{"trainer_id": trainerID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrConflict
		}
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SoftDelete flips the trainer status to "deleted" without removing the
// document.
func (r *mongoTrainerRepository) SoftDelete(ctx context.Context, trainerID string) error {
	update := bson.M{"$set": bson.M{
		"status":     domain.StatusDeleted,
		"updated_at": time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"trainer_id": trainerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the trainer document entirely.
func (r *mongoTrainerRepository) Delete(ctx context.Context, trainerID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"trainer_id": trainerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// buildTrainerFilter converts selection criteria into a Mongo query.
// Equality filters combine by conjunction; the free-text query expands into
// a case-insensitive regex $or over name, specialization and bio; the
// experience bounds share one range document; skills expand into per-flag
// equality checks restricted to the known whitelist.
func buildTrainerFilter(f repository.TrainerFilter) bson.M {
	query := bson.M{}

	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Specialization != "" {
		query["primary_specialization"] = f.Specialization
	}
	if f.Query != "" {
		regex := bson.M{"$regex": f.Query, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"full_name": regex},
			bson.M{"primary_specialization": regex},
			bson.M{"short_bio": regex},
		}
	}

	experience := bson.M{}
	if f.MinExperience != nil {
		experience["$gte"] = *f.MinExperience
	}
	if f.MaxExperience != nil {
		experience["$lte"] = *f.MaxExperience
	}
	if len(experience) > 0 {
		query["experience"] = experience
	}

	if len(f.Languages) > 0 {
		query["languages"] = bson.M{"$in": f.Languages}
	}

	var skillClauses bson.A
	for _, skill := range f.Skills {
		field := strings.ReplaceAll(strings.ToLower(skill), " ", "_")
		if knownSkillFields[field] {
			skillClauses = append(skillClauses, bson.M{"skills." + field: true})
		}
	}
	if len(skillClauses) > 0 {
		query["$and"] = skillClauses
	}

	return query
}

// buildTrainerPatch converts a patch into the $set document. Fields absent
// from the patch are left untouched; updated_at is always written.
func buildTrainerPatch(patch *domain.TrainerPatch) bson.M {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.FullName.Set {
		set["full_name"] = patch.FullName.Value
	}
	if patch.Experience.Set {
		set["experience"] = patch.Experience.Value
	}
	if patch.PrimarySpecialization.Set {
		set["primary_specialization"] = patch.PrimarySpecialization.Value
	}
	if patch.Languages.Set {
		set["languages"] = patch.Languages.Value
	}
	if patch.ShortBio.Set {
		set["short_bio"] = patch.ShortBio.Value
	}
	if patch.Skills.Set {
		set["skills"] = patch.Skills.Value
	}
	if patch.Certifications.Set {
		set["certifications"] = patch.Certifications.Value
	}
	if patch.PreferredMode.Set {
		set["preferred_mode"] = patch.PreferredMode.Value
	}
	if patch.WeeklySchedule.Set {
		set["weekly_schedule"] = patch.WeeklySchedule.Value
	}
	if patch.Pricing.Set {
		set["pricing"] = patch.Pricing.Value
	}
	if patch.Media.Set {
		set["media"] = patch.Media.Value
	}
	if patch.Status.Set {
		set["status"] = patch.Status.Value
	}
	return set
}

// EnsureTrainerIndexes creates necessary indexes for the trainers
// collection. The compound name+specialization unique index backs the
// duplicate pre-check in the service layer.
func EnsureTrainerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "full_name", Value: 1},
				{Key: "primary_specialization", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "trainer_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "primary_specialization", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
