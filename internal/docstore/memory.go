// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory implements Store in process memory. It backs tests and is the
// reference for the merge semantics the Postgres implementation must match.
type Memory struct {
	mu   sync.RWMutex
	seq  int
	docs map[string]map[string]memoryDoc
}

type memoryDoc struct {
	data json.RawMessage
	seq  int // insertion order, for newest-first listing
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]map[string]memoryDoc)}
}

// Get returns the document data for (collection, id), or ErrNotFound.
func (s *Memory) Get(_ context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return append(json.RawMessage(nil), doc.data...), nil
}

// List returns every document in the collection, newest first.
func (s *Memory) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type entry struct {
		id  string
		doc memoryDoc
	}
	var entries []entry
	for id, doc := range s.docs[collection] {
		entries = append(entries, entry{id, doc})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].doc.seq > entries[j].doc.seq })

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, Document{ID: e.id, Data: append(json.RawMessage(nil), e.doc.data...)})
	}
	return docs, nil
}

// Create stores data under a freshly generated key and returns the key.
func (s *Memory) Create(_ context.Context, collection string, data json.RawMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.put(collection, id, data)
	return id, nil
}

// Merge deep-merges patch into the stored document, creating it when absent.
func (s *Memory) Merge(_ context.Context, collection, id string, patch json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cur json.RawMessage
	if doc, ok := s.docs[collection][id]; ok {
		cur = doc.data
	}
	merged, err := mergeJSON(cur, patch)
	if err != nil {
		return err
	}
	if doc, ok := s.docs[collection][id]; ok {
		doc.data = merged
		s.docs[collection][id] = doc
		return nil
	}
	s.put(collection, id, merged)
	return nil
}

// Delete removes the document. Missing documents are not an error.
func (s *Memory) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs[collection], id)
	return nil
}

// put stores a document. Caller holds the write lock.
func (s *Memory) put(collection, id string, data json.RawMessage) {
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]memoryDoc)
	}
	s.seq++
	s.docs[collection][id] = memoryDoc{data: append(json.RawMessage(nil), data...), seq: s.seq}
}
