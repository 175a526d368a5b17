// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

// Package content synchronizes the local state container with the remote
// document store. Section saves are optimistic: the local mutation is
// applied first so readers see the change immediately, then the remote
// write is issued, and a failure is reported to the caller without rolling
// the local state back. Project mutations go the other way: the remote
// write happens first and local state only changes on success.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"puredesign/internal/docstore"
	"puredesign/internal/models"
	"puredesign/internal/state"
)

// remoteTimeout bounds every remote document operation.
const remoteTimeout = 10 * time.Second

// Service wires the state container to the document store.
type Service struct {
	state *state.Store
	docs  docstore.Store
}

// NewService creates the synchronization service.
func NewService(st *state.Store, docs docstore.Store) *Service {
	return &Service{state: st, docs: docs}
}

// FetchGlobalContent pulls the singleton content document and overlays it
// onto local state. A missing document or a transport failure is logged and
// swallowed: the local state (defaults or last snapshot) keeps serving.
func (s *Service) FetchGlobalContent(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	data, err := s.docs.Get(ctx, docstore.CollectionContent, docstore.ContentDocID)
	if errors.Is(err, docstore.ErrNotFound) {
		slog.Info("no remote content document, keeping local state")
		return
	}
	if err != nil {
		slog.Error("fetch global content failed", "error", err)
		return
	}

	var rc state.RemoteContent
	if err := json.Unmarshal(data, &rc); err != nil {
		slog.Error("remote content document is malformed", "error", err)
		return
	}
	if err := s.state.ApplyRemoteContent(rc); err != nil {
		slog.Error("apply remote content failed", "error", err)
		return
	}
	slog.Info("global content synced from remote store")
}

// FetchProjects pulls the full project collection, newest first, and
// replaces the local list. Failures are logged and swallowed.
func (s *Service) FetchProjects(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	docs, err := s.docs.List(ctx, docstore.CollectionProjects)
	if err != nil {
		slog.Error("fetch projects failed", "error", err)
		return
	}

	projects := make([]models.Project, 0, len(docs))
	for _, doc := range docs {
		var p models.Project
		if err := json.Unmarshal(doc.Data, &p); err != nil {
			slog.Warn("skipping malformed project document", "id", doc.ID, "error", err)
			continue
		}
		p.ID = doc.ID
		projects = append(projects, p)
	}
	s.state.ReplaceProjects(projects)
	slog.Info("projects synced from remote store", "count", len(projects))
}

// contentPatch is the merge payload written to the singleton content
// document. Of the root sections only the edited one is present, so a
// merge never clobbers sections written concurrently by another editor.
// Translations always travel as the whole tree: that is what makes pending
// local-only translation and package edits durable.
type contentPatch struct {
	Hero         *models.HeroBlock     `json:"hero,omitempty"`
	About        *models.AboutBlock    `json:"about,omitempty"`
	Contact      *models.ContactBlock  `json:"contact,omitempty"`
	Translations map[models.Locale]any `json:"translations,omitempty"`
}

func (s *Service) mergeContent(ctx context.Context, patch contentPatch) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal content patch: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()
	if err := s.docs.Merge(ctx, docstore.CollectionContent, docstore.ContentDocID, data); err != nil {
		return fmt.Errorf("merge content document: %w", err)
	}
	return nil
}

// localTranslations snapshots the whole local translation tree for a
// merge payload.
func localTranslations(c models.SiteContent) map[models.Locale]any {
	out := make(map[models.Locale]any, len(c.Translations))
	for locale, lc := range c.Translations {
		out[locale] = lc
	}
	return out
}

// UpdateHero applies a hero patch locally, then persists the full merged
// hero section together with the translation tree remotely.
func (s *Service) UpdateHero(ctx context.Context, p models.HeroPatch) error {
	s.state.ApplyHero(p)

	c := s.state.Content()
	return s.mergeContent(ctx, contentPatch{
		Hero:         &c.Hero,
		Translations: localTranslations(c),
	})
}

// UpdateAbout applies an about patch locally, then persists remotely.
func (s *Service) UpdateAbout(ctx context.Context, p models.AboutPatch) error {
	s.state.ApplyAbout(p)

	c := s.state.Content()
	return s.mergeContent(ctx, contentPatch{
		About:        &c.About,
		Translations: localTranslations(c),
	})
}

// UpdateContact applies a contact patch locally, then persists remotely.
func (s *Service) UpdateContact(ctx context.Context, p models.ContactPatch) error {
	s.state.ApplyContact(p)

	c := s.state.Content()
	return s.mergeContent(ctx, contentPatch{
		Contact:      &c.Contact,
		Translations: localTranslations(c),
	})
}

// UpdateTranslation edits one section of one locale. Local-only: the
// translation tree is persisted as a whole by SaveTranslations or by the
// next section update that carries it.
func (s *Service) UpdateTranslation(locale models.Locale, section models.Section, patch map[string]any) error {
	return s.state.ApplyTranslation(locale, section, patch)
}

// UpdateServicePackage edits one service package of one locale, addressed
// by position. Local-only, like UpdateTranslation.
func (s *Service) UpdateServicePackage(locale models.Locale, index int, patch models.ServicePackagePatch) error {
	return s.state.ApplyServicePackage(locale, index, patch)
}

// SaveTranslations persists the entire local translation tree to the
// remote content document in one merge. The explicit save step batches the
// local-only edits made through UpdateTranslation and UpdateServicePackage.
func (s *Service) SaveTranslations(ctx context.Context) error {
	return s.mergeContent(ctx, contentPatch{
		Translations: localTranslations(s.state.Content()),
	})
}

// AddProject creates the project remotely first, so the store-assigned ID
// is durable, then prepends it to the local list. Unlike section updates,
// a remote failure here means no local change: a project without a durable
// ID could never be edited or deleted.
func (s *Service) AddProject(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = ""
	data, err := json.Marshal(p)
	if err != nil {
		return models.Project{}, fmt.Errorf("marshal project: %w", err)
	}

	cctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()
	id, err := s.docs.Create(cctx, docstore.CollectionProjects, data)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project document: %w", err)
	}

	p.ID = id
	s.state.PrependProject(p)
	return p, nil
}

// UpdateProject merges a project patch into the project's document, then
// applies it locally on success. A failed merge leaves the local list
// untouched.
func (s *Service) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal project patch: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()
	if err := s.docs.Merge(ctx, docstore.CollectionProjects, id, data); err != nil {
		return fmt.Errorf("merge project document: %w", err)
	}
	s.state.MergeProject(id, patch)
	return nil
}

// DeleteProject deletes the project's document, then removes it locally
// on success.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()
	if err := s.docs.Delete(ctx, docstore.CollectionProjects, id); err != nil {
		return fmt.Errorf("delete project document: %w", err)
	}
	s.state.RemoveProject(id)
	return nil
}
