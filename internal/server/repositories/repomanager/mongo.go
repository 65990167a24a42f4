package repomanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoManager vends MongoDB-backed repositories over one client.
type MongoManager struct {
	client   *mongo.Client
	users    *users.MongoRepository
	contacts *contacts.MongoRepository
}

func (m *MongoManager) Users() users.Repository       { return m.users }
func (m *MongoManager) Contacts() contacts.Repository { return m.contacts }

func (m *MongoManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// OpenMongo connects to MongoDB, verifies the primary is reachable and
// creates the indexes the repositories rely on.
func OpenMongo(ctx context.Context, uri, database string) (*MongoManager, error) {
	if database == "" {
		return nil, errors.New("mongo database name must be set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(database)
	m := &MongoManager{
		client:   client,
		users:    users.NewMongoRepository(db),
		contacts: contacts.NewMongoRepository(db),
	}

	if err := m.users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	if err := m.contacts.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return m, nil
}
