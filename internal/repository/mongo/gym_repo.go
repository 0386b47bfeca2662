package mongo

import (
	"context"
	"errors"
	"time"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gymCollectionName = "gyms"

// mongoGymRepository implements repository.GymRepository.
type mongoGymRepository struct {
	collection *mongo.Collection
}

// NewMongoGymRepository creates a new instance of mongoGymRepository.
func NewMongoGymRepository(db *mongo.Database) repository.GymRepository {
	return &mongoGymRepository{
		collection: db.Collection(gymCollectionName),
	}
}

// Create inserts a gym with a generated gym_id and the creation timestamp.
func (r *mongoGymRepository) Create(ctx context.Context, gym *domain.Gym) (string, error) {
	if gym.GymName == "" {
		return "", errors.New("gym name is required")
	}

	gym.ID = primitive.NewObjectID()
	if gym.GymID == "" {
		gym.GymID = primitive.NewObjectID().Hex()
	}
	gym.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, gym); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrConflict
		}
		return "", err
	}

	return gym.GymID, nil
}

// GetByName retrieves a gym by its unique name.
func (r *mongoGymRepository) GetByName(ctx context.Context, name string) (*domain.Gym, error) {
	var gym domain.Gym
	err := r.collection.FindOne(ctx, bson.M{"gym_name": name}).Decode(&gym)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &gym, nil
}

// GetAll retrieves every gym document.
func (r *mongoGymRepository) GetAll(ctx context.Context) ([]domain.Gym, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var gyms []domain.Gym
	if err := cursor.All(ctx, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

// Update applies a partial gym update. Only fields present in the patch are
// written; the update timestamp is always set.
func (r *mongoGymRepository) Update(ctx context.Context, gymID string, patch *domain.GymPatch) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.GymName.Set {
		set["gym_name"] = patch.GymName.Value
	}
	if patch.CategoryID.Set {
		set["category_id"] = patch.CategoryID.Value
	}
	if patch.City.Set {
		set["city"] = patch.City.Value
	}
	if patch.Distance.Set {
		set["distance"] = patch.Distance.Value
	}
	if patch.Address.Set {
		set["address"] = patch.Address.Value
	}
	if patch.Contact.Set {
		set["contact"] = patch.Contact.Value
	}
	if patch.Booking.Set {
		set["booking"] = patch.Booking.Value
	}
	if patch.About.Set {
		set["about"] = patch.About.Value
	}
	if patch.Facilities.Set {
		set["facilities"] = patch.Facilities.Value
	}
	if patch.FacilityNotes.Set {
		set["facility_notes"] = patch.FacilityNotes.Value
	}
	if patch.OpeningHours.Set {
		set["opening_hours"] = patch.OpeningHours.Value
	}
	if patch.MembershipOptions.Set {
		set["membership_options"] = patch.MembershipOptions.Value
	}
	if patch.LogoURL.Set {
		set["logo_url"] = patch.LogoURL.Value
	}
	if patch.CoverImageURL.Set {
		set["cover_image_url"] = patch.CoverImageURL.Value
	}
	if patch.Gallery.Set {
		set["gallery"] = patch.Gallery.Value
	}
	if patch.Status.Set {
		set["status"] = patch.Status.Value
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"gym_id": gymID}, bson.M{"$set": set})
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

// Delete removes the gym document entirely.
func (r *mongoGymRepository) Delete(ctx context.Context, gymID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"gym_id": gymID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureGymIndexes creates necessary indexes for the gyms collection.
func EnsureGymIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gym_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "gym_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
