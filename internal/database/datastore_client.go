package database

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/datastore"
	"github.com/locvowork/staff_attendance/internal/domain"
)

// KVKind is the datastore kind holding persisted collections
const KVKind = "AttendanceKV"

// kvEntity is one persisted collection. Value is unindexed so it may exceed 1500 bytes.
type kvEntity struct {
	Value string `datastore:"Value,noindex"`
}

// DatastoreClient wraps the cloud datastore client as a KV store
type DatastoreClient struct {
	client *datastore.Client
}

// NewDatastoreClient dials datastore for projectID.
func NewDatastoreClient(ctx context.Context, projectID string) (*DatastoreClient, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create datastore client: %w", err)
	}
	return &DatastoreClient{client: client}, nil
}

// WrapDatastoreClient wraps existing datastore client
func WrapDatastoreClient(client *datastore.Client) *DatastoreClient {
	if client == nil {
		return nil
	}
	return &DatastoreClient{client: client}
}

func (dc *DatastoreClient) key(name string) *datastore.Key {
	return datastore.NameKey(KVKind, name, nil)
}

func (dc *DatastoreClient) Get(ctx context.Context, key string) (string, bool, error) {
	if dc == nil || dc.client == nil {
		return "", false, domain.ErrNilStoreClient
	}

	var e kvEntity
	err := dc.client.Get(ctx, dc.key(key), &e)
	if errors.Is(err, datastore.ErrNoSuchEntity) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (dc *DatastoreClient) Set(ctx context.Context, key, value string) error {
	if dc == nil || dc.client == nil {
		return domain.ErrNilStoreClient
	}
	if _, err := dc.client.Put(ctx, dc.key(key), &kvEntity{Value: value}); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (dc *DatastoreClient) Remove(ctx context.Context, key string) error {
	if dc == nil || dc.client == nil {
		return domain.ErrNilStoreClient
	}
	if err := dc.client.Delete(ctx, dc.key(key)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (dc *DatastoreClient) Close() error {
	if dc == nil || dc.client == nil {
		return nil
	}
	return dc.client.Close()
}
