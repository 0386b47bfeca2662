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

const categoryCollectionName = "categories"

// mongoCategoryRepository implements repository.CategoryRepository.
type mongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewMongoCategoryRepository creates a new instance of mongoCategoryRepository.
func NewMongoCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &mongoCategoryRepository{
		collection: db.Collection(categoryCollectionName),
	}
}

// Create inserts a category with a generated category_id.
func (r *mongoCategoryRepository) Create(ctx context.Context, category *domain.Category) (string, error) {
	if category.CategoryName == "" {
		return "", errors.New("category name is required")
	}

	category.ID = primitive.NewObjectID()
	if category.CategoryID == "" {
		category.CategoryID = primitive.NewObjectID().Hex()
	}
	if category.Status == "" {
		category.Status = domain.StatusNew
	}
	category.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrConflict
		}
		return "", err
	}

	return category.CategoryID, nil
}

// GetByName retrieves a category by its unique name.
func (r *mongoCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	err := r.collection.FindOne(ctx, bson.M{"category_name": name}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetAll retrieves every category document.
func (r *mongoCategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateName sets the category name and the update timestamp.
func (r *mongoCategoryRepository) UpdateName(ctx context.Context, categoryID, name string) error {
	update := bson.M{"$set": bson.M{
		"category_name": name,
		"updated_at":    time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"category_id": categoryID}, update)
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

// Delete removes the category document entirely.
func (r *mongoCategoryRepository) Delete(ctx context.Context, categoryID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCategoryIndexes creates necessary indexes for the categories collection.
func EnsureCategoryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
