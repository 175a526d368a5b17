// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
)

// Stat is one headline statistic shown in the about section ("08+ Years Exp").
type Stat struct {
	Num   string `json:"num"`
	Label string `json:"label"`
}

// HeroBlock is the global hero section.
type HeroBlock struct {
	HeadlineFirst  string `json:"headlineFirst"`
	HeadlineSecond string `json:"headlineSecond"`
	Subhead        string `json:"subhead"`
}

// AboutBlock is the global about section.
type AboutBlock struct {
	ImageURL    string `json:"imageUrl"`
	CV          string `json:"cv"`
	Tag         string `json:"tag"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Stats       []Stat `json:"stats"`
}

// ContactBlock is the global contact section.
type ContactBlock struct {
	Email    string `json:"email"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// NavSection holds the navigation labels for one locale.
type NavSection struct {
	Works    string `json:"works"`
	Services string `json:"services"`
	About    string `json:"about"`
	Contact  string `json:"contact"`
}

// LocaleHero is the hero section of one locale's translation tree: the
// shared headline fields plus the locale-only copy strings.
type LocaleHero struct {
	HeadlineFirst  string `json:"headlineFirst"`
	HeadlineSecond string `json:"headlineSecond"`
	Sub            string `json:"sub"`
	CTA            string `json:"cta"`
	About          string `json:"about"`
	Customers      string `json:"customers"`
	NewColl        string `json:"newColl"`
	Join           string `json:"join"`
}

// SocialLinks holds the external profile URLs shown in the about section.
type SocialLinks struct {
	Behance   string `json:"behance"`
	Telegram  string `json:"telegram"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Skill is one tool proficiency entry.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Label string `json:"label"`
}

// LocaleAbout is the about section of one locale.
type LocaleAbout struct {
	Tag    string      `json:"tag"`
	Title  string      `json:"title"`
	Desc   string      `json:"desc"`
	Links  SocialLinks `json:"links"`
	Skills []Skill     `json:"skills"`
}

// PortfolioSection holds the portfolio labels for one locale.
type PortfolioSection struct {
	Title string `json:"title"`
	Empty string `json:"empty"`
	View  string `json:"view"`
	Visit string `json:"visit"`
}

// ServicePackage is one offered service package. The ID is shared across
// locales; the editor nonetheless addresses packages positionally, so the
// ID is carried for display and is not used as an alignment key.
type ServicePackage struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	For      string   `json:"for"`
	Desc     string   `json:"desc"`
	Includes []string `json:"includes"`
	Value    string   `json:"value"`
	Feature  bool     `json:"feature,omitempty"`
}

// ServicesSection holds the service packages for one locale.
type ServicesSection struct {
	Title    string           `json:"title"`
	Sub      string           `json:"sub"`
	Packages []ServicePackage `json:"packages"`
}

// ProcessStep is one step of the working-process section.
type ProcessStep struct {
	Num   string `json:"num"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// ProcessSection holds the working-process copy for one locale.
type ProcessSection struct {
	Sub   string        `json:"sub"`
	Title string        `json:"title"`
	Steps []ProcessStep `json:"steps"`
}

// InquirySection holds the inquiry form labels for one locale.
type InquirySection struct {
	Title   string `json:"title"`
	Sub     string `json:"sub"`
	Btn     string `json:"btn"`
	Sending string `json:"sending"`
}

// LocaleContact is the contact section of one locale.
type LocaleContact struct {
	Location string `json:"location"`
	Title    string `json:"title"`
	Tag      string `json:"tag"`
}

// QuizPlaceholders holds the contact-form placeholders of the quiz.
type QuizPlaceholders struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// QuizQuestion is one step of the lead-capture quiz.
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizSection holds the quiz copy and questions for one locale.
type QuizSection struct {
	IntroTitle   string           `json:"introTitle"`
	IntroDesc    string           `json:"introDesc"`
	BtnStart     string           `json:"btnStart"`
	FormTitle    string           `json:"formTitle"`
	FormDesc     string           `json:"formDesc"`
	Placeholders QuizPlaceholders `json:"placeholders"`
	BtnSubmit    string           `json:"btnSubmit"`
	SuccessTitle string           `json:"successTitle"`
	SuccessDesc  string           `json:"successDesc"`
	BtnReset     string           `json:"btnReset"`
	Questions    []QuizQuestion   `json:"questions"`
}

// PricingSection holds the pricing widget labels for one locale.
type PricingSection struct {
	Title string `json:"title"`
	Sub   string `json:"sub"`
	Label string `json:"label"`
	Btn   string `json:"btn"`
}

// LocaleContent is the full translation tree of one locale. Every locale in
// SiteContent.Translations carries the full shape; partial locale objects
// can appear in remote data (older writes) and are tolerated by merging,
// but are never produced locally.
type LocaleContent struct {
	Nav       NavSection       `json:"nav"`
	Hero      LocaleHero       `json:"hero"`
	About     LocaleAbout      `json:"about"`
	Portfolio PortfolioSection `json:"portfolio"`
	Services  ServicesSection  `json:"services"`
	Process   ProcessSection   `json:"process"`
	Inquiry   InquirySection   `json:"inquiry"`
	Contact   LocaleContact    `json:"contact"`
	Quiz      QuizSection      `json:"quiz"`
	Pricing   PricingSection   `json:"pricing"`
}

// SiteContent is the singleton global content document.
type SiteContent struct {
	Hero         HeroBlock                `json:"hero"`
	About        AboutBlock               `json:"about"`
	Contact      ContactBlock             `json:"contact"`
	Translations map[Locale]LocaleContent `json:"translations"`
}

// Clone returns a deep copy of the site content. The state container hands
// out clones so callers can never mutate shared state through a read.
func (c SiteContent) Clone() SiteContent {
	out := c
	out.About.Stats = append([]Stat(nil), c.About.Stats...)
	out.Translations = make(map[Locale]LocaleContent, len(c.Translations))
	for l, lc := range c.Translations {
		out.Translations[l] = lc.Clone()
	}
	return out
}

// Clone returns a deep copy of one locale's translation tree.
func (lc LocaleContent) Clone() LocaleContent {
	out := lc
	out.About.Skills = append([]Skill(nil), lc.About.Skills...)
	out.Process.Steps = append([]ProcessStep(nil), lc.Process.Steps...)
	out.Services.Packages = make([]ServicePackage, len(lc.Services.Packages))
	for i, p := range lc.Services.Packages {
		p.Includes = append([]string(nil), p.Includes...)
		out.Services.Packages[i] = p
	}
	out.Quiz.Questions = make([]QuizQuestion, len(lc.Quiz.Questions))
	for i, q := range lc.Quiz.Questions {
		q.Options = append([]string(nil), q.Options...)
		out.Quiz.Questions[i] = q
	}
	return out
}

// HeroPatch is a partial update to the hero section. Nil fields are left
// unchanged. The headline fields fan out into the current locale's hero as
// well; Subhead exists only at the global root.
type HeroPatch struct {
	HeadlineFirst  *string `json:"headlineFirst,omitempty"`
	HeadlineSecond *string `json:"headlineSecond,omitempty"`
	Subhead        *string `json:"subhead,omitempty"`
}

// MergeHero applies a hero patch, overwriting exactly the set fields.
func MergeHero(cur HeroBlock, p HeroPatch) HeroBlock {
	if p.HeadlineFirst != nil {
		cur.HeadlineFirst = *p.HeadlineFirst
	}
	if p.HeadlineSecond != nil {
		cur.HeadlineSecond = *p.HeadlineSecond
	}
	if p.Subhead != nil {
		cur.Subhead = *p.Subhead
	}
	return cur
}

// ApplyToLocale fans the shared hero fields out into a locale hero.
func (p HeroPatch) ApplyToLocale(cur LocaleHero) LocaleHero {
	if p.HeadlineFirst != nil {
		cur.HeadlineFirst = *p.HeadlineFirst
	}
	if p.HeadlineSecond != nil {
		cur.HeadlineSecond = *p.HeadlineSecond
	}
	return cur
}

// AboutPatch is a partial update to the about section. A nil Stats slice
// leaves the stats unchanged; an empty non-nil slice clears them.
type AboutPatch struct {
	ImageURL    *string `json:"imageUrl,omitempty"`
	CV          *string `json:"cv,omitempty"`
	Tag         *string `json:"tag,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Stats       []Stat  `json:"stats,omitempty"`
}

// MergeAbout applies an about patch, overwriting exactly the set fields.
func MergeAbout(cur AboutBlock, p AboutPatch) AboutBlock {
	if p.ImageURL != nil {
		cur.ImageURL = *p.ImageURL
	}
	if p.CV != nil {
		cur.CV = *p.CV
	}
	if p.Tag != nil {
		cur.Tag = *p.Tag
	}
	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Stats != nil {
		cur.Stats = append([]Stat(nil), p.Stats...)
	}
	return cur
}

// ApplyToLocale fans the shared about fields (tag, title) out into a locale
// about section.
func (p AboutPatch) ApplyToLocale(cur LocaleAbout) LocaleAbout {
	if p.Tag != nil {
		cur.Tag = *p.Tag
	}
	if p.Title != nil {
		cur.Title = *p.Title
	}
	return cur
}

// ContactPatch is a partial update to the contact section.
type ContactPatch struct {
	Email    *string `json:"email,omitempty"`
	Location *string `json:"location,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// MergeContact applies a contact patch, overwriting exactly the set fields.
func MergeContact(cur ContactBlock, p ContactPatch) ContactBlock {
	if p.Email != nil {
		cur.Email = *p.Email
	}
	if p.Location != nil {
		cur.Location = *p.Location
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	return cur
}

// ApplyToLocale fans the shared contact field (location) out into a locale
// contact section.
func (p ContactPatch) ApplyToLocale(cur LocaleContact) LocaleContact {
	if p.Location != nil {
		cur.Location = *p.Location
	}
	return cur
}

// ServicePackagePatch is a partial update to one service package. A nil
// Includes slice leaves the list unchanged.
type ServicePackagePatch struct {
	Title    *string  `json:"title,omitempty"`
	Subtitle *string  `json:"subtitle,omitempty"`
	For      *string  `json:"for,omitempty"`
	Desc     *string  `json:"desc,omitempty"`
	Includes []string `json:"includes,omitempty"`
	Value    *string  `json:"value,omitempty"`
	Feature  *bool    `json:"feature,omitempty"`
}

// MergeServicePackage applies a package patch, overwriting exactly the set
// fields. The package ID is never patched.
func MergeServicePackage(cur ServicePackage, p ServicePackagePatch) ServicePackage {
	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Subtitle != nil {
		cur.Subtitle = *p.Subtitle
	}
	if p.For != nil {
		cur.For = *p.For
	}
	if p.Desc != nil {
		cur.Desc = *p.Desc
	}
	if p.Includes != nil {
		cur.Includes = append([]string(nil), p.Includes...)
	}
	if p.Value != nil {
		cur.Value = *p.Value
	}
	if p.Feature != nil {
		cur.Feature = *p.Feature
	}
	return cur
}

// MergeSection shallow-merges a free-form patch into one named section of a
// locale tree. Only the top-level keys present in the patch are overwritten;
// sibling keys and every other section stay untouched. Applying the same
// patch twice converges to the same result.
//
// Used by the generic translation editor, which edits arbitrary sections
// (process, pricing, quiz, per-locale about) without a dedicated patch type.
func MergeSection(lc LocaleContent, section Section, patch map[string]any) (LocaleContent, error) {
	if !section.Valid() {
		return lc, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	raw, err := json.Marshal(lc)
	if err != nil {
		return lc, fmt.Errorf("marshal locale content: %w", err)
	}
	var tree map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tree); err != nil {
		return lc, fmt.Errorf("unmarshal locale tree: %w", err)
	}

	var sec map[string]any
	if err := json.Unmarshal(tree[string(section)], &sec); err != nil {
		return lc, fmt.Errorf("unmarshal section %q: %w", section, err)
	}
	for k, v := range patch {
		sec[k] = v
	}

	merged, err := json.Marshal(sec)
	if err != nil {
		return lc, fmt.Errorf("marshal section %q: %w", section, err)
	}
	tree[string(section)] = merged

	full, err := json.Marshal(tree)
	if err != nil {
		return lc, fmt.Errorf("marshal locale tree: %w", err)
	}
	var out LocaleContent
	if err := json.Unmarshal(full, &out); err != nil {
		return lc, fmt.Errorf("rebuild locale content: %w", err)
	}
	return out, nil
}

// MergeLocaleJSON overlays a raw remote locale object onto the current
// locale tree. Remote data may be a partial locale (older writes or a
// half-initialized store); sections and fields absent remotely keep their
// local values instead of being blanked.
func MergeLocaleJSON(cur LocaleContent, remote json.RawMessage) (LocaleContent, error) {
	curRaw, err := json.Marshal(cur)
	if err != nil {
		return cur, fmt.Errorf("marshal current locale: %w", err)
	}
	var curMap, remoteMap map[string]any
	if err := json.Unmarshal(curRaw, &curMap); err != nil {
		return cur, fmt.Errorf("unmarshal current locale: %w", err)
	}
	if err := json.Unmarshal(remote, &remoteMap); err != nil {
		return cur, fmt.Errorf("unmarshal remote locale: %w", err)
	}

	merged := deepMerge(curMap, remoteMap)
	raw, err := json.Marshal(merged)
	if err != nil {
		return cur, fmt.Errorf("marshal merged locale: %w", err)
	}
	var out LocaleContent
	if err := json.Unmarshal(raw, &out); err != nil {
		return cur, fmt.Errorf("rebuild merged locale: %w", err)
	}
	return out, nil
}

// deepMerge overlays src onto dst, recursing into nested objects. Arrays
// and scalars from src replace dst wholesale.
func deepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcObj, srcIsObj := v.(map[string]any)
		dstObj, dstIsObj := out[k].(map[string]any)
		if srcIsObj && dstIsObj {
			out[k] = deepMerge(dstObj, srcObj)
			continue
		}
		out[k] = v
	}
	return out
}
