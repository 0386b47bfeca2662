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

const facilityCollectionName = "facilities"

// mongoFacilityRepository implements repository.FacilityRepository.
type mongoFacilityRepository struct {
	collection *mongo.Collection
}

// NewMongoFacilityRepository creates a new instance of mongoFacilityRepository.
func NewMongoFacilityRepository(db *mongo.Database) repository.FacilityRepository {
	return &mongoFacilityRepository{
		collection: db.Collection(facilityCollectionName),
	}
}

// Create inserts a facility with a generated facility_id, the "new" default
// status and the creation timestamp.
func (r *mongoFacilityRepository) Create(ctx context.Context, facility *domain.Facility) (string, error) {
	if facility.FacilityName == "" {
		return "", errors.New("facility name is required")
	}

	facility.ID = primitive.NewObjectID()
	if facility.FacilityID == "" {
		facility.FacilityID = primitive.NewObjectID().Hex()
	}
	if facility.Status == "" {
		facility.Status = domain.StatusNew
	}
	facility.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, facility); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrConflict
		}
		return "", err
	}

	return facility.FacilityID, nil
}

// GetByName retrieves a facility by its unique name.
func (r *mongoFacilityRepository) GetByName(ctx context.Context, name string) (*domain.Facility, error) {
	var facility domain.Facility
	err := r.collection.FindOne(ctx, bson.M{"facility_name": name}).Decode(&facility)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &facility, nil
}

// GetAll retrieves every facility document.
func (r *mongoFacilityRepository) GetAll(ctx context.Context) ([]domain.Facility, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var facilities []domain.Facility
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

// UpdateName sets the facility name and the update timestamp.
func (r *mongoFacilityRepository) UpdateName(ctx context.Context, facilityID, name string) error {
	update := bson.M{"$set": bson.M{
		"facility_name": name,
		"updated_at":    time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"facility_id": facilityID}, update)
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

// Delete removes the facility document entirely.
func (r *mongoFacilityRepository) Delete(ctx context.Context, facilityID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"facility_id": facilityID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFacilityIndexes creates necessary indexes for the facilities
// collection. Name uniqueness is authoritative here; the service-level
// pre-check only improves the error message.
func EnsureFacilityIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "facility_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "facility_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
