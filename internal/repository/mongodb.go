// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Steps     *mongo.Collection
	MenuItems *mongo.Collection
	Dishes    *mongo.Collection
	Logs      *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	// Build client options with connection pool configuration
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:    client,
		Database:  db,
		Steps:     db.Collection("steps"),
		MenuItems: db.Collection("menu_items"),
		Dishes:    db.Collection("dishes"),
		Logs:      db.Collection("logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Steps are read in ordinal order on every catalog load.
	stepNumberIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"step_number": 1},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.Steps.Indexes().CreateOne(ctx, stepNumberIndex); err != nil {
		return err
	}

	// Options are grouped by the category a step draws from.
	categoryIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"category_id": 1},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.MenuItems.Indexes().CreateOne(ctx, categoryIndex); err != nil {
		return err
	}

	// Dishes are listed per order on the cart screen.
	orderIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"order_id": 1},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.Dishes.Indexes().CreateOne(ctx, orderIndex); err != nil {
		return err
	}

	// Logs index: request_id for querying.
	requestIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"request_id": 1},
		Options: options.Index().SetUnique(false),
	}
	// Ignore errors if index already exists
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	return nil
}

// SetLogsTTL creates or updates the TTL index on the logs collection.
// Log documents expire ttlDays after their timestamp.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	if ttlDays <= 0 {
		return nil
	}

	ttlIndex := mongo.IndexModel{
		Keys: map[string]interface{}{"timestamp": 1},
		Options: options.Index().
			SetExpireAfterSeconds(int32(ttlDays * 24 * 60 * 60)).
			SetName("logs_ttl"),
	}

	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close disconnects the MongoDB client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// Ping verifies the database connection is alive.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}
