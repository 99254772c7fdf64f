package contact

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/showcase/pkg/errors"
)

// MongoStore keeps messages in a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to uri and verifies the server is reachable.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "ping mongodb")
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Insert upserts by ID so a retried request cannot create a duplicate.
// Every field, including the server-assigned timestamp, is only written
// when missing, so a retry leaves the stored document untouched.
func (s *MongoStore) Insert(ctx context.Context, m Message) (*Message, error) {
	filter := bson.D{{Key: "_id", Value: m.ID}}
	update := mongo.Pipeline{{{Key: "$set", Value: bson.D{
		{Key: "name", Value: keep("name", m.Name)},
		{Key: "email", Value: keep("email", m.Email)},
		{Key: "message", Value: keep("message", m.Message)},
		{Key: "read", Value: keep("read", false)},
		{Key: "timestamp", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$timestamp", "$$NOW"}}}},
	}}}}

	_, err := s.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, s.wrap(err, "insert message")
	}
	return s.Get(ctx, m.ID)
}

// keep is an update expression that retains field if set and otherwise
// writes v. $literal stops user input starting with "$" being read as a
// field path.
func keep(field string, v any) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{"$" + field, bson.D{{Key: "$literal", Value: v}}}}}
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Message, error) {
	var m Message
	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&m)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.wrap(err, "get message "+id)
	}
	m.Timestamp = m.Timestamp.UTC()
	return &m, nil
}

func (s *MongoStore) wrap(err error, op string) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "%s", op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *MongoStore) Name() string { return "mongo" }

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
