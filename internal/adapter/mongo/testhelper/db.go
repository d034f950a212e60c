// Package testhelper starts a shared MongoDB container for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// SetupTestCollection starts a shared MongoDB container (once for the entire
// test run) and returns a collection in a fresh database. The database is
// dropped and the client disconnected via t.Cleanup.
func SetupTestCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test mongo: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(sharedURI))
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}

	db := client.Database("test_" + strings.ReplaceAll(uuid.New().String()[:8], "-", ""))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db.Collection("SharkAttack")
}

// URI returns the shared container URI. SetupTestCollection must have been called.
func URI() string {
	return sharedURI
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForLog("Waiting for connections").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port()), nil
}
