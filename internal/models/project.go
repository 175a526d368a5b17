// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// BlockType distinguishes the kinds of content blocks in a project body.
type BlockType string

const (
	BlockText  BlockType = "text"
	BlockImage BlockType = "image"
	BlockVideo BlockType = "video"
)

// Valid reports whether t is a known block type.
func (t BlockType) Valid() bool {
	switch t {
	case BlockText, BlockImage, BlockVideo:
		return true
	}
	return false
}

// ContentBlock is one unit of a project's rich-content body. The ID is a
// client-generated token, stable for the block's lifetime; slice order is
// render order.
type ContentBlock struct {
	ID    string    `json:"id"`
	Type  BlockType `json:"type"`
	Value string    `json:"value"`
}

// NewBlockID returns a fresh unique block identifier.
func NewBlockID() string {
	return uuid.NewString()
}

// Project is one portfolio case. The ID is assigned by the remote document
// store on first write; a draft may carry a provisional client id, which is
// replaced by the durable id when the create succeeds.
//
// GalleryImages is the legacy pre-block representation of the project's
// media. It is no longer read once Content is non-empty.
type Project struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Category      string         `json:"category"`
	Img           string         `json:"img"`
	Link          string         `json:"link"`
	Content       []ContentBlock `json:"content"`
	GalleryImages []string       `json:"galleryImages,omitempty"`
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Content = append([]ContentBlock(nil), p.Content...)
	out.GalleryImages = append([]string(nil), p.GalleryImages...)
	return out
}

// ProjectPatch is a partial update to a project. Nil fields are left
// unchanged; a non-nil Content slice replaces the block sequence wholesale
// (block edits are whole-sequence saves from the editor).
type ProjectPatch struct {
	Title    *string        `json:"title,omitempty"`
	Category *string        `json:"category,omitempty"`
	Img      *string        `json:"img,omitempty"`
	Link     *string        `json:"link,omitempty"`
	Content  []ContentBlock `json:"content,omitempty"`
}

// MergeProject applies a project patch, overwriting exactly the set fields.
// The project ID is never patched.
func MergeProject(cur Project, p ProjectPatch) Project {
	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Category != nil {
		cur.Category = *p.Category
	}
	if p.Img != nil {
		cur.Img = *p.Img
	}
	if p.Link != nil {
		cur.Link = *p.Link
	}
	if p.Content != nil {
		cur.Content = append([]ContentBlock(nil), p.Content...)
	}
	return cur
}

// MigrateLegacyGallery upgrades a project that still uses the flat legacy
// image list: when the structured content is empty and GalleryImages is
// not, each legacy URL becomes an image block with a fresh id, preserving
// order. The legacy field is left in place; it stops being read as soon as
// Content is non-empty. The remote record is only rewritten when the admin
// saves the project.
func MigrateLegacyGallery(p Project) Project {
	if len(p.Content) > 0 || len(p.GalleryImages) == 0 {
		return p
	}
	out := p.Clone()
	out.Content = make([]ContentBlock, 0, len(p.GalleryImages))
	for _, url := range p.GalleryImages {
		out.Content = append(out.Content, ContentBlock{
			ID:    NewBlockID(),
			Type:  BlockImage,
			Value: url,
		})
	}
	return out
}
