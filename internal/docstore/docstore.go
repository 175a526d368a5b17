// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

// Package docstore is the remote content store boundary: a key-value
// document API over named collections. The site uses two collections — a
// "content" collection holding the singleton global document under a fixed
// key, and a "projects" collection of store-keyed project documents.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// Well-known collection and document keys.
const (
	CollectionContent  = "content"
	CollectionProjects = "projects"
	ContentDocID       = "main"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("document not found")

// Document is one stored document with its store-assigned key.
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Store is the document store contract. Merge uses deep-merge semantics:
// object fields present in the patch overlay the stored document
// recursively, arrays and scalars replace wholesale, and a missing
// document is created from the patch (upsert).
type Store interface {
	// Get returns the document data for (collection, id), or ErrNotFound.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)

	// List returns every document in the collection, newest first.
	List(ctx context.Context, collection string) ([]Document, error)

	// Create stores data under a freshly generated key and returns the key.
	Create(ctx context.Context, collection string, data json.RawMessage) (string, error)

	// Merge deep-merges patch into the document at (collection, id),
	// creating it when absent.
	Merge(ctx context.Context, collection, id string, patch json.RawMessage) error

	// Delete removes the document. Deleting a missing document is not an
	// error.
	Delete(ctx context.Context, collection, id string) error
}
