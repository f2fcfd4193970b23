package docstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDocument is the stored envelope: user data is nested under "data" so
// store-managed fields never collide with entity fields.
type mongoDocument struct {
	ID        string    `bson:"_id"`
	Data      bson.Raw  `bson:"data"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore maps each logical collection to a MongoDB collection
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to uri and verifies the connection with a ping
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	log.Println("[MONGO] Connecting to MongoDB...")

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Println("[MONGO] Connected successfully")
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *MongoStore) Create(ctx context.Context, collection, id string, data []byte) error {
	doc, err := jsonToBSON(data)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = s.db.Collection(collection).InsertOne(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "data", Value: doc},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("mongo insert %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var raw mongoDocument
	err := s.db.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo get %s/%s: %w", collection, id, err)
	}
	return raw.toDocument()
}

func (s *MongoStore) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	sortKey := "createdAt"
	if q.OrderBy != "" {
		sortKey = "data." + q.OrderBy
	}
	dir := 1
	if q.Descending {
		dir = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: dir}, {Key: "_id", Value: dir}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := s.db.Collection(collection).Find(ctx, mongoFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []Document{}
	for cur.Next(ctx) {
		var raw mongoDocument
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("mongo decode %s: %w", collection, err)
		}
		doc, err := raw.toDocument()
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, cur.Err()
}

func (s *MongoStore) Set(ctx context.Context, collection, id string, data []byte) error {
	doc, err := jsonToBSON(data)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = s.db.Collection(collection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "data", Value: doc}, {Key: "updatedAt", Value: now}}},
			{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Merge sets data.<field> for every top-level field of patch
func (s *MongoStore) Merge(ctx context.Context, collection, id string, patch []byte) error {
	if _, err := validatePatch(patch); err != nil {
		return err
	}
	fields, err := jsonToBSON(patch)
	if err != nil {
		return err
	}

	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	for _, e := range fields {
		set = append(set, bson.E{Key: "data." + e.Key, Value: e.Value})
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return fmt.Errorf("mongo merge %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("mongo delete %s/%s: %w", collection, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, q Query) (int64, error) {
	if err := q.validate(); err != nil {
		return 0, err
	}
	n, err := s.db.Collection(collection).CountDocuments(ctx, mongoFilter(q))
	if err != nil {
		return 0, fmt.Errorf("mongo count %s: %w", collection, err)
	}
	return n, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(pingCtx, nil)
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func mongoFilter(q Query) bson.D {
	filter := bson.D{}
	for _, f := range q.Filters {
		filter = append(filter, bson.E{Key: "data." + f.Field, Value: f.Value})
	}
	return filter
}

// jsonToBSON converts a JSON object to an ordered BSON document
func jsonToBSON(data []byte) (bson.D, error) {
	if _, err := decodeObject(data); err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return doc, nil
}

func (m mongoDocument) toDocument() (*Document, error) {
	data, err := bson.MarshalExtJSON(m.Data, false, false)
	if err != nil {
		return nil, fmt.Errorf("mongo to json %s: %w", m.ID, err)
	}
	return &Document{
		ID:        m.ID,
		Data:      data,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
