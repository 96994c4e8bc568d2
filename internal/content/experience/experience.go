// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package experience implements the work-experience timeline resource.
package experience

import (
	"time"

	"github.com/markrahimi/folio/pkg/i18n"
)

// Experience is the full bilingual document, as stored and as returned to admins.
//
// Order controls placement on the public timeline (lower first); ties fall
// back to insertion order.
type Experience struct {
	ID           string        `json:"id"`
	Company      i18n.Text     `json:"company"`
	Role         i18n.Text     `json:"role"`
	Type         i18n.Text     `json:"type"`
	Duration     i18n.Text     `json:"duration"`
	Location     i18n.Text     `json:"location"`
	Description  i18n.Text     `json:"description"`
	Achievements i18n.TextList `json:"achievements"`
	Color        string        `json:"color,omitempty"`
	Order        int           `json:"order"`
	Published    bool          `json:"published"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Public is the single-language projection served to the site.
type Public struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Type         string   `json:"type,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements"`
	Color        string   `json:"color,omitempty"`
	Order        int      `json:"order"`
}

// Localize collapses every bilingual field to the requested language.
func (e *Experience) Localize(lang i18n.Lang) *Public {
	return &Public{
		ID:           e.ID,
		Company:      e.Company.In(lang),
		Role:         e.Role.In(lang),
		Type:         e.Type.In(lang),
		Duration:     e.Duration.In(lang),
		Location:     e.Location.In(lang),
		Description:  e.Description.In(lang),
		Achievements: e.Achievements.In(lang),
		Color:        e.Color,
		Order:        e.Order,
	}
}

// Input is the allow-listed write payload for POST and PUT.
type Input struct {
	Company      *i18n.Text     `json:"company"`
	Role         *i18n.Text     `json:"role"`
	Type         *i18n.Text     `json:"type"`
	Duration     *i18n.Text     `json:"duration"`
	Location     *i18n.Text     `json:"location"`
	Description  *i18n.Text     `json:"description"`
	Achievements *i18n.TextList `json:"achievements"`
	Color        *string        `json:"color"`
	Order        *int           `json:"order"`
	Published    *bool          `json:"published"`
}

func (in *Input) apply(e *Experience) {
	if in.Company != nil {
		e.Company = *in.Company
	}
	if in.Role != nil {
		e.Role = *in.Role
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Duration != nil {
		e.Duration = *in.Duration
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Achievements != nil {
		e.Achievements = *in.Achievements
	}
	if in.Color != nil {
		e.Color = *in.Color
	}
	if in.Order != nil {
		e.Order = *in.Order
	}
	if in.Published != nil {
		e.Published = *in.Published
	}
}

// Global field names for validation.
const (
	FieldCompany = "company"
	FieldRole    = "role"
)
