// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package skill implements the skill-category resource.
//
// A category has a bilingual title; the technology names themselves are
// locale independent and stored as a flat list.
package skill

import (
	"time"

	"github.com/markrahimi/folio/pkg/i18n"
)

// Skill is the full bilingual document, as stored and as returned to admins.
type Skill struct {
	ID        string    `json:"id"`
	Title     i18n.Text `json:"title"`
	Skills    []string  `json:"skills"`
	Color     string    `json:"color,omitempty"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public is the single-language projection served to the site.
type Public struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
	Color  string   `json:"color,omitempty"`
	Order  int      `json:"order"`
}

// Localize collapses the title to the requested language.
func (s *Skill) Localize(lang i18n.Lang) *Public {
	return &Public{
		ID:     s.ID,
		Title:  s.Title.In(lang),
		Skills: s.Skills,
		Color:  s.Color,
		Order:  s.Order,
	}
}

// Input is the allow-listed write payload for POST and PUT.
type Input struct {
	Title     *i18n.Text `json:"title"`
	Skills    *[]string  `json:"skills"`
	Color     *string    `json:"color"`
	Order     *int       `json:"order"`
	Published *bool      `json:"published"`
}

func (in *Input) apply(s *Skill) {
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Skills != nil {
		s.Skills = *in.Skills
	}
	if in.Color != nil {
		s.Color = *in.Color
	}
	if in.Order != nil {
		s.Order = *in.Order
	}
	if in.Published != nil {
		s.Published = *in.Published
	}
}

const (
	FieldTitle  = "title"
	FieldSkills = "skills"
)
