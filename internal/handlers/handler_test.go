// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Handlers run against the in-process state container and the in-memory
// document store, so no external services are needed.
package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"puredesign/internal/content"
	"puredesign/internal/docstore"
	"puredesign/internal/state"
)

func newAdmin(t *testing.T) (*Admin, *state.Store, *docstore.Memory) {
	t.Helper()
	st := state.New(nil)
	docs := docstore.NewMemory()
	svc := content.NewService(st, docs)
	return NewAdmin(st, svc), st, docs
}

// withURLParam injects a chi route parameter so handlers can be invoked
// directly without a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}
