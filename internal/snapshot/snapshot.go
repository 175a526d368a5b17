// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

// Package snapshot is the durable local storage boundary for the state
// container. A declared subset of the application state — hero, about,
// contact, projects, language, inquiries, categories — is written out on
// every persisting mutation and read back once at startup, before any
// remote fetch completes.
package snapshot

import "puredesign/internal/models"

// Namespace versions the stored snapshot. Bumping it orphans old
// snapshots instead of trying to migrate them.
const Namespace = "puredesign-web-storage-v5"

// Snapshot is the persisted subset of the application state. Translations
// are deliberately excluded: they are large, fully covered by defaults, and
// re-fetched from the remote store on startup.
type Snapshot struct {
	Hero       models.HeroBlock    `json:"hero"`
	About      models.AboutBlock   `json:"about"`
	Contact    models.ContactBlock `json:"contact"`
	Projects   []models.Project    `json:"projects"`
	Language   models.Locale       `json:"language"`
	Inquiries  []models.Inquiry    `json:"inquiries"`
	Categories []string            `json:"categories"`
}

// Saver persists and restores snapshots. Load returns (nil, nil) when no
// snapshot has been stored yet.
type Saver interface {
	Save(snap *Snapshot) error
	Load() (*Snapshot, error)
}
