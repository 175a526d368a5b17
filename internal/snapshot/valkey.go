// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// valkeyTimeout bounds each snapshot round-trip so a hung Valkey never
// stalls a state mutation.
const valkeyTimeout = 5 * time.Second

// ValkeyStore persists the snapshot as a single JSON value in Valkey under
// the fixed namespace key, with no TTL. Useful when the server runs on
// ephemeral disks but a Valkey instance is already part of the deployment.
type ValkeyStore struct {
	client *redis.Client
}

// NewValkeyStore creates a Valkey-backed snapshot store.
func NewValkeyStore(client *redis.Client) *ValkeyStore {
	return &ValkeyStore{client: client}
}

// Save writes the snapshot. A single SET is atomic on the server side.
func (s *ValkeyStore) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), valkeyTimeout)
	defer cancel()

	if err := s.client.Set(ctx, Namespace, data, 0).Err(); err != nil {
		return fmt.Errorf("snapshot store: %w", err)
	}
	return nil
}

// Load reads the snapshot back. Returns (nil, nil) if none exists.
func (s *ValkeyStore) Load() (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), valkeyTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, Namespace).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot get: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("snapshot unmarshal: %w", err)
	}
	return &snap, nil
}
