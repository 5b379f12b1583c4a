package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements ProfilesRepo using a Mongo collection.
type MongoRepo struct {
	Col *mongo.Collection
}

// profileDoc is the stored shape. Profiles are addressed by their own id
// field rather than the collection's _id.
type profileDoc struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Age       float64   `bson:"age"`
	Bio       string    `bson:"bio"`
	ImageURL  string    `bson:"imageUrl"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Create inserts a new profile.
func (r *MongoRepo) Create(ctx context.Context, p Profile) error {
	doc := profileDoc{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Bio:       p.Bio,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
	if _, err := r.Col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert profile %s: %w", p.ID, err)
	}
	return nil
}

// GetByID fetches a profile by its id field.
func (r *MongoRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	var doc profileDoc
	err := r.Col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("find profile %s: %w", id, err)
	}
	return Profile{
		ID:        doc.ID,
		Name:      doc.Name,
		Age:       doc.Age,
		Bio:       doc.Bio,
		ImageURL:  doc.ImageURL,
		CreatedAt: doc.CreatedAt,
	}, nil
}

var _ ProfilesRepo = (*MongoRepo)(nil)
