//go:build integration

// Package testutil provides the shared MongoDB testcontainer used by
// integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

// MongoDBContainer wraps a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB starts a fresh MongoDB container and returns its
// connection URI. Most tests should use the shared container via
// SetupTestMainWithMongoDB instead; starting a container costs tens of
// seconds.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
)

// SetupTestMainWithMongoDB runs a package's tests against one shared
// MongoDB container. Wire it in as:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	sharedOnce.Do(func() {
		shared, sharedErr = StartMongoDB(ctx)
	})
	if sharedErr != nil {
		panic(sharedErr)
	}

	code := m.Run()

	if err := shared.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to terminate shared MongoDB container: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared container.
// Panics when called outside a SetupTestMainWithMongoDB run.
func GetSharedContainerURI() string {
	if shared == nil {
		panic("shared MongoDB container not initialized; use SetupTestMainWithMongoDB in TestMain")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a valid, unique MongoDB
// database name so tests sharing the container stay isolated.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
