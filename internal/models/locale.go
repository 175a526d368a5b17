// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

// Package models defines the typed content schema for the PureDesign site:
// the global sections (hero, about, contact), the per-locale translation
// tree, portfolio projects with their block-based content, and lead
// inquiries. It also provides the explicit merge functions used by the
// state container and the synchronization layer.
package models

import "errors"

// Locale identifies one of the three supported display languages. Each
// locale carries its own full copy of translatable content.
type Locale string

const (
	LocaleENG Locale = "ENG"
	LocaleRUS Locale = "RUS"
	LocaleKAZ Locale = "KAZ"
)

// Locales lists all supported locales in display order.
var Locales = []Locale{LocaleENG, LocaleRUS, LocaleKAZ}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	switch l {
	case LocaleENG, LocaleRUS, LocaleKAZ:
		return true
	}
	return false
}

// Section names one top-level content grouping within a locale's
// translation tree.
type Section string

const (
	SectionNav       Section = "nav"
	SectionHero      Section = "hero"
	SectionAbout     Section = "about"
	SectionPortfolio Section = "portfolio"
	SectionServices  Section = "services"
	SectionProcess   Section = "process"
	SectionInquiry   Section = "inquiry"
	SectionContact   Section = "contact"
	SectionQuiz      Section = "quiz"
	SectionPricing   Section = "pricing"
)

// Valid reports whether s names a known locale section.
func (s Section) Valid() bool {
	switch s {
	case SectionNav, SectionHero, SectionAbout, SectionPortfolio,
		SectionServices, SectionProcess, SectionInquiry, SectionContact,
		SectionQuiz, SectionPricing:
		return true
	}
	return false
}

// ErrUnknownLocale and ErrUnknownSection are returned by merge operations
// that address the translation tree with an invalid key.
var (
	ErrUnknownLocale  = errors.New("unknown locale")
	ErrUnknownSection = errors.New("unknown section")
)
