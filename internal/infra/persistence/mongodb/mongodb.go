// Package mongodb contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"canteen/config"
	"canteen/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database.
// The connection is verified and indexes are ensured when the app starts.
func New(params Params) (*mongo.Database, error) {
	mongoCfg := params.Config.Mongo
	if mongoCfg == nil || mongoCfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	clientOpts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetConnectTimeout(mongoCfg.ConnectTimeout).
		SetServerSelectionTimeout(mongoCfg.ConnectTimeout).
		SetMonitor(newCommandMonitor(params.Logger, params.Config)).
		SetPoolMonitor(newPoolMonitor(params.Logger))

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(mongoCfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", mongoCfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}
