package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

// ConnectOptions defines how the Mongo client is built.
type ConnectOptions struct {
	URI      string        // ex: "mongodb://localhost:27017"
	Database string        // database holding every collection
	Timeout  time.Duration // connect, server selection and socket timeout (ex: 10s)
}

func (o ConnectOptions) validate() error {
	if o.URI == "" {
		return fmt.Errorf("mongo URI must not be empty")
	}
	if o.Database == "" {
		return fmt.Errorf("mongo database must not be empty")
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("Timeout must be > 0, got %v", o.Timeout)
	}
	return nil
}

// Connect opens a client and checks it with a single ping. There is no
// retry: callers fall back to another store on error.
func Connect(ctx context.Context, opts ConnectOptions, log logger.Logger) (*Store, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	log.Info("connecting to mongo",
		logger.String("database", opts.Database),
		logger.Duration("timeout", opts.Timeout))

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(opts.Timeout).
		SetServerSelectionTimeout(opts.Timeout).
		SetSocketTimeout(opts.Timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	if err := ping(pingCtx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info("connected to mongo", logger.String("database", opts.Database))
	return newStore(client, client.Database(opts.Database)), nil
}

func ping(ctx context.Context, client *mongo.Client) error {
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
