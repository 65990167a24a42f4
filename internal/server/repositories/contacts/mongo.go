package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the MongoDB collection holding contacts.
const CollectionName = "contacts"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the index used by tenant listings.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pbd", Value: 1}, {Key: "created_at", Value: 1}},
		Options: options.Index().SetName("contacts_pbd_created_at"),
	})
	if err != nil {
		return fmt.Errorf("create contacts index: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: mongo error: %w", common.ErrPersistence, err)
	}
	return c, nil
}

func (r *MongoRepository) ListByTenant(ctx context.Context, pbd bool) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.D{{Key: "pbd", Value: pbd}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: mongo error: %w", common.ErrPersistence, err)
	}

	result := make([]models.Contact, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%w: mongo error: %w", common.ErrPersistence, err)
	}
	return result, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	c := &models.Contact{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: mongo error: %w", common.ErrPersistence, err)
	}
	return c, nil
}

// SetStatus relies on MatchedCount rather than ModifiedCount so that
// setting the current status again is still a success.
func (r *MongoRepository) SetStatus(ctx context.Context, id string, status models.Status) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
	)
	if err != nil {
		return fmt.Errorf("%w: mongo error: %w", common.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return fmt.Errorf("%w: mongo error: %w", common.ErrPersistence, err)
	}
	return nil
}
