// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

// Package state holds the in-process view of all site content: the global
// sections, the translation tree for every locale, the project list,
// categories, inquiries, and the selected locale. It is the single mutable
// shared resource in the process; every write goes through a typed mutation
// method, every read returns a snapshot copy.
//
// Mutations that touch a persisted field write the durable snapshot before
// returning, and subscribers are notified synchronously after the state
// change — before any remote write is issued by the synchronization layer.
package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"puredesign/internal/models"
	"puredesign/internal/snapshot"
)

// Store is the local reactive state container.
type Store struct {
	mu sync.Mutex

	content    models.SiteContent
	projects   []models.Project
	categories []string
	inquiries  []models.Inquiry
	language   models.Locale

	saver snapshot.Saver // nil disables durable persistence

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int

	now func() time.Time
}

// New creates a store seeded with the default content. If saver is non-nil,
// a previously persisted snapshot is rehydrated over the defaults and every
// persisting mutation writes the snapshot back.
func New(saver snapshot.Saver) *Store {
	s := &Store{
		content:    models.DefaultSiteContent(),
		categories: models.DefaultCategories(),
		language:   models.LocaleENG,
		saver:      saver,
		subs:       make(map[int]func()),
		now:        time.Now,
	}

	if saver != nil {
		snap, err := saver.Load()
		if err != nil {
			slog.Warn("snapshot rehydrate failed, starting from defaults", "error", err)
		} else if snap != nil {
			s.rehydrate(snap)
			slog.Info("state rehydrated from snapshot",
				"projects", len(s.projects),
				"inquiries", len(s.inquiries),
				"language", s.language,
			)
		}
	}

	return s
}

// rehydrate applies the persisted subset over the defaults. Translations
// are not persisted locally; they keep their defaults until the remote
// fetch lands.
func (s *Store) rehydrate(snap *snapshot.Snapshot) {
	s.content.Hero = snap.Hero
	s.content.About = snap.About
	s.content.Contact = snap.Contact
	if snap.Projects != nil {
		s.projects = snap.Projects
	}
	if snap.Language.Valid() {
		s.language = snap.Language
	}
	if snap.Inquiries != nil {
		s.inquiries = snap.Inquiries
	}
	if snap.Categories != nil {
		s.categories = snap.Categories
	}
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription. Callbacks run synchronously on the
// mutating goroutine, after the change is fully applied.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// persistLocked writes the durable snapshot. Caller holds s.mu, so the
// snapshot can never interleave with a half-applied mutation. Failures are
// logged and swallowed: local persistence is best-effort, like the browser
// storage it replaces.
func (s *Store) persistLocked() {
	if s.saver == nil {
		return
	}
	snap := &snapshot.Snapshot{
		Hero:       s.content.Hero,
		About:      s.content.About,
		Contact:    s.content.Contact,
		Projects:   cloneProjects(s.projects),
		Language:   s.language,
		Inquiries:  append([]models.Inquiry(nil), s.inquiries...),
		Categories: append([]string(nil), s.categories...),
	}
	if err := s.saver.Save(snap); err != nil {
		slog.Warn("snapshot save failed", "error", err)
	}
}

func cloneProjects(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// Content returns a deep copy of the full content tree.
func (s *Store) Content() models.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content.Clone()
}

// Projects returns a copy of the project list, newest first.
func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProjects(s.projects)
}

// Project returns the project with the given id, or false.
func (s *Store) Project(id string) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// Categories returns a copy of the category set.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...)
}

// Inquiries returns a copy of the inquiry list, newest first.
func (s *Store) Inquiries() []models.Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Inquiry(nil), s.inquiries...)
}

// Language returns the selected locale.
func (s *Store) Language() models.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// ApplyHero merges a hero patch into the global hero and fans the shared
// fields into the current locale's hero.
func (s *Store) ApplyHero(p models.HeroPatch) {
	s.mu.Lock()
	s.content.Hero = models.MergeHero(s.content.Hero, p)
	if lc, ok := s.content.Translations[s.language]; ok {
		lc.Hero = p.ApplyToLocale(lc.Hero)
		s.content.Translations[s.language] = lc
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// ApplyAbout merges an about patch into the global about section and fans
// the shared fields into the current locale.
func (s *Store) ApplyAbout(p models.AboutPatch) {
	s.mu.Lock()
	s.content.About = models.MergeAbout(s.content.About, p)
	if lc, ok := s.content.Translations[s.language]; ok {
		lc.About = p.ApplyToLocale(lc.About)
		s.content.Translations[s.language] = lc
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// ApplyContact merges a contact patch into the global contact section and
// fans the shared fields into the current locale.
func (s *Store) ApplyContact(p models.ContactPatch) {
	s.mu.Lock()
	s.content.Contact = models.MergeContact(s.content.Contact, p)
	if lc, ok := s.content.Translations[s.language]; ok {
		lc.Contact = p.ApplyToLocale(lc.Contact)
		s.content.Translations[s.language] = lc
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// ApplyTranslation shallow-merges a free-form patch into exactly
// translations[locale][section]. Every other locale and section is left
// untouched. Unknown locales and sections are errors.
func (s *Store) ApplyTranslation(locale models.Locale, section models.Section, patch map[string]any) error {
	if !locale.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownLocale, locale)
	}

	s.mu.Lock()
	lc, ok := s.content.Translations[locale]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", models.ErrUnknownLocale, locale)
	}
	merged, err := models.MergeSection(lc, section, patch)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.content.Translations[locale] = merged
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// ApplyServicePackage shallow-merges a package patch into
// translations[locale].services.packages[index]. An out-of-range index is
// an error, not undefined behavior.
func (s *Store) ApplyServicePackage(locale models.Locale, index int, patch models.ServicePackagePatch) error {
	if !locale.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownLocale, locale)
	}

	s.mu.Lock()
	lc, ok := s.content.Translations[locale]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", models.ErrUnknownLocale, locale)
	}
	if index < 0 || index >= len(lc.Services.Packages) {
		s.mu.Unlock()
		return fmt.Errorf("service package index %d out of range (locale %s has %d)", index, locale, len(lc.Services.Packages))
	}
	lc.Services.Packages[index] = models.MergeServicePackage(lc.Services.Packages[index], patch)
	s.content.Translations[locale] = lc
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// RemoteContent is the parsed shape of the remote global content document.
// Nil fields were absent remotely and leave local state untouched.
type RemoteContent struct {
	Hero         *models.HeroBlock                 `json:"hero"`
	About        *models.AboutBlock                `json:"about"`
	Contact      *models.ContactBlock              `json:"contact"`
	Translations map[models.Locale]json.RawMessage `json:"translations"`
}

// ApplyRemoteContent overwrites local sections with whatever the remote
// document carries. Present sections replace local values wholesale;
// translations are merged per locale so a partial remote locale never
// blanks local content. Locales absent remotely keep their local tree.
func (s *Store) ApplyRemoteContent(rc RemoteContent) error {
	s.mu.Lock()
	if rc.Hero != nil {
		s.content.Hero = *rc.Hero
	}
	if rc.About != nil {
		s.content.About = *rc.About
	}
	if rc.Contact != nil {
		s.content.Contact = *rc.Contact
	}
	for locale, raw := range rc.Translations {
		if !locale.Valid() {
			slog.Warn("ignoring unknown locale in remote content", "locale", locale)
			continue
		}
		merged, err := models.MergeLocaleJSON(s.content.Translations[locale], raw)
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("merge remote locale %s: %w", locale, err)
		}
		s.content.Translations[locale] = merged
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// ReplaceProjects replaces the project list wholesale (the fetch path).
func (s *Store) ReplaceProjects(projects []models.Project) {
	s.mu.Lock()
	s.projects = cloneProjects(projects)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// PrependProject puts a newly created project at the head of the list.
func (s *Store) PrependProject(p models.Project) {
	s.mu.Lock()
	s.projects = append([]models.Project{p.Clone()}, s.projects...)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// MergeProject applies a patch to the project with the given id. A missing
// id is a silent no-op: the remote write already succeeded, and the next
// full fetch reconciles the list.
func (s *Store) MergeProject(id string, patch models.ProjectPatch) {
	s.mu.Lock()
	for i, p := range s.projects {
		if p.ID == id {
			s.projects[i] = models.MergeProject(p, patch)
			break
		}
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// RemoveProject deletes the project with the given id from the local list.
func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// AddCategory appends a category. Duplicates are ignored; the set stays
// unique.
func (s *Store) AddCategory(name string) {
	s.mu.Lock()
	for _, c := range s.categories {
		if c == name {
			s.mu.Unlock()
			return
		}
	}
	s.categories = append(s.categories, name)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// DeleteCategory removes a category. Projects referencing it keep the
// dangling value; there is deliberately no cascade.
func (s *Store) DeleteCategory(name string) {
	s.mu.Lock()
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// SetLanguage switches the selected locale. Pure local switch: no refetch,
// and locale-scoped reads reflect the new locale immediately.
func (s *Store) SetLanguage(locale models.Locale) error {
	if !locale.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownLocale, locale)
	}
	s.mu.Lock()
	s.language = locale
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// AddInquiry prepends a new unread inquiry built from the draft and
// returns it.
func (s *Store) AddInquiry(d models.InquiryDraft) models.Inquiry {
	s.mu.Lock()
	inq := models.NewInquiry(d, s.now())
	s.inquiries = append([]models.Inquiry{inq}, s.inquiries...)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return inq
}

// DeleteInquiry removes the inquiry with the given id.
func (s *Store) DeleteInquiry(id string) {
	s.mu.Lock()
	kept := s.inquiries[:0]
	for _, i := range s.inquiries {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	s.inquiries = kept
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// MarkInquiryRead flips the targeted inquiry's read flag to true. Order and
// every other inquiry are untouched.
func (s *Store) MarkInquiryRead(id string) {
	s.mu.Lock()
	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			s.inquiries[i].Read = true
			break
		}
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}
