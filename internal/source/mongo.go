package source

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rusearch/internal/apperr"
	"rusearch/internal/config"
)

// mongoDocument mirrors the {url, html_content} shape MongoDBClient
// reads and writes.
type mongoDocument struct {
	URL         string `bson:"url"`
	HTMLContent string `bson:"html_content"`
}

// MongoSource is a DocumentSource backed by a MongoDB collection,
// grounded on original_source/src/mongodb_client.cpp's connection and
// projection logic.
type MongoSource struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoSource connects to the collection described by cfg. The URI
// includes username/password only when both are set, matching
// MongoDBClient::connect's branch.
func NewMongoSource(ctx context.Context, cfg config.MongoConfig) (*MongoSource, error) {
	uri := fmt.Sprintf("mongodb://%s:%d", cfg.Host, cfg.Port)
	if cfg.Username != "" && cfg.Password != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, apperr.New(apperr.ErrSourceConnect, "connecting to %s: %v", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, apperr.New(apperr.ErrSourceConnect, "pinging %s: %v", uri, err)
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	return &MongoSource{client: client, collection: collection}, nil
}

// Count returns the total number of documents in the collection.
func (m *MongoSource) Count(ctx context.Context) (int, error) {
	n, err := m.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, apperr.New(apperr.ErrSourceConnect, "counting documents: %v", err)
	}
	return int(n), nil
}

// Fetch streams documents projected to {url, html_content}, stopping
// after limit documents (limit <= 0 means all of them) or on the first
// error returned by fn.
func (m *MongoSource) Fetch(ctx context.Context, limit int, fn func(Document) error) error {
	opts := options.Find().SetProjection(bson.D{
		{Key: "url", Value: 1},
		{Key: "html_content", Value: 1},
	})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := m.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return apperr.New(apperr.ErrSourceConnect, "querying documents: %v", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var raw mongoDocument
		if err := cursor.Decode(&raw); err != nil {
			return apperr.New(apperr.ErrSourceConnect, "decoding document: %v", err)
		}
		if err := fn(Document{URL: raw.URL, HTMLContent: raw.HTMLContent}); err != nil {
			return err
		}
	}
	return cursor.Err()
}

// Insert adds a crawled document to the collection.
func (m *MongoSource) Insert(ctx context.Context, doc Document) error {
	_, err := m.collection.InsertOne(ctx, mongoDocument{URL: doc.URL, HTMLContent: doc.HTMLContent})
	if err != nil {
		return apperr.New(apperr.ErrSourceConnect, "inserting document %s: %v", doc.URL, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *MongoSource) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
