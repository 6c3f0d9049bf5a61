package database

import (
	"context"
	"fmt"

	"github.com/locvowork/staff_attendance/internal/domain"
)

// Store drivers
const (
	DriverMemory    = "memory"
	DriverFile      = "file"
	DriverPostgres  = "postgres"
	DriverDatastore = "datastore"
	DriverMongo     = "mongo"
)

// StoreOptions selects and configures a KV driver
type StoreOptions struct {
	Driver             string
	FileDir            string
	Postgres           Config
	DatastoreProjectID string
	MongoURI           string
	MongoDatabase      string
}

// OpenStore opens the configured driver. The returned close func releases its connections.
func OpenStore(ctx context.Context, opts StoreOptions) (domain.KVStore, func() error, error) {
	noop := func() error { return nil }

	switch opts.Driver {
	case DriverMemory:
		return NewMemoryStore(), noop, nil

	case DriverFile:
		s, err := NewFileStore(opts.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case DriverPostgres:
		db, err := NewPostgresDB(ctx, opts.Postgres)
		if err != nil {
			return nil, nil, err
		}
		s, err := NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, db.Close, nil

	case DriverDatastore:
		s, err := NewDatastoreClient(ctx, opts.DatastoreProjectID)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case DriverMongo:
		s, err := NewMongoStore(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return s.Close(context.Background()) }, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownDriver, opts.Driver)
}
