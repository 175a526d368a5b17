// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package models

import (
	"strconv"
	"time"
)

// Inquiry is one lead captured by the quiz or the contact form. Inquiries
// are local-only: they live in the state container and its durable
// snapshot, never in the remote store.
type Inquiry struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Task       string    `json:"task"`
	Budget     string    `json:"budget"`
	Deadline   string    `json:"deadline"`
	References string    `json:"references"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
	Read       bool      `json:"read"`
}

// InquiryDraft carries the caller-supplied fields of a new inquiry.
type InquiryDraft struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Task       string `json:"task"`
	Budget     string `json:"budget"`
	Deadline   string `json:"deadline"`
	References string `json:"references"`
	Comment    string `json:"comment"`
}

// NewInquiry builds an unread inquiry from a draft with a time-based id.
func NewInquiry(d InquiryDraft, now time.Time) Inquiry {
	return Inquiry{
		ID:         strconv.FormatInt(now.UnixNano(), 10),
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Phone:      d.Phone,
		Task:       d.Task,
		Budget:     d.Budget,
		Deadline:   d.Deadline,
		References: d.References,
		Comment:    d.Comment,
		Date:       now,
		Read:       false,
	}
}
