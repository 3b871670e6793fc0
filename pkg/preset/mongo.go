package preset

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/stairforge/pkg/errors"
)

// MongoStore is a MongoDB-backed preset store for server deployments where
// every replica must see the same presets.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig configures a MongoDB-backed store.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name (default "stairforge").
	Database string

	// Collection is the collection name (default "presets").
	Collection string
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "stairforge"
	}
	if cfg.Collection == "" {
		cfg.Collection = "presets"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, name string) (Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Preset{}, err
	}

	var p Preset
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&p)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return Preset{}, notFound(name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("find preset: %w", err)
	}
	return p, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Preset, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer cursor.Close(ctx)

	presets := make([]Preset, 0)
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return presets, nil
}

func (s *MongoStore) Put(ctx context.Context, p Preset) (Preset, error) {
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}

	var prev *Preset
	if existing, err := s.Get(ctx, p.Name); err == nil {
		prev = &existing
	}
	p = stamp(p, prev)

	_, err := s.collection.ReplaceOne(ctx, bson.M{"name": p.Name}, p,
		options.Replace().SetUpsert(true))
	if err != nil {
		return Preset{}, fmt.Errorf("store preset: %w", err)
	}
	return p, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidatePresetName(name); err != nil {
		return err
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(name)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
