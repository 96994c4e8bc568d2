// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

/*
Package project implements the bilingual project showcase resource.

A project carries the deepest bilingual structure in the content model:
nested challenge pairs, a per-language tech-stack map, and labelled metrics.
Each nested shape localizes itself, so the projection stays one level at a
time all the way down.

# Identity

Projects are addressed by a string slug (e.g. "portfolio-website") that also
forms the public URL. When an admin omits it on create, the slug is derived
from the English title.
*/
package project

import (
	"time"

	"github.com/markrahimi/folio/pkg/i18n"
)

// # Domain Entities

// Challenge is a problem/solution pair, bilingual on both sides.
type Challenge struct {
	Problem  i18n.Text `json:"problem"`
	Solution i18n.Text `json:"solution"`
}

// PublicChallenge is the single-language view of a [Challenge].
type PublicChallenge struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

// Localize collapses both sides of the pair.
func (c Challenge) Localize(lang i18n.Lang) PublicChallenge {
	return PublicChallenge{Problem: c.Problem.In(lang), Solution: c.Solution.In(lang)}
}

// TechStack groups technology names by category, duplicated per language
// (category names are user-facing text; the technology lists usually match).
type TechStack = i18n.Localized[map[string][]string]

// Metric is a bilingual label with a locale-independent value ("50k+ users").
type Metric struct {
	Label i18n.Text `json:"label"`
	Value string    `json:"value"`
}

// PublicMetric is the single-language view of a [Metric].
type PublicMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Localize collapses the metric label.
func (m Metric) Localize(lang i18n.Lang) PublicMetric {
	return PublicMetric{Label: m.Label.In(lang), Value: m.Value}
}

// Project is the full bilingual document, as stored and as returned to admins.
type Project struct {
	ID              string        `json:"id"`
	Title           i18n.Text     `json:"title"`
	Subtitle        i18n.Text     `json:"subtitle"`
	Description     i18n.Text     `json:"description"`
	LongDescription i18n.Text     `json:"longDescription"`
	Image           string        `json:"image"`
	Tags            []string      `json:"tags"`
	GitHub          string        `json:"github,omitempty"`
	Demo            string        `json:"demo,omitempty"`
	Date            string        `json:"date,omitempty"`
	Category        string        `json:"category,omitempty"`
	Color           string        `json:"color,omitempty"`
	Features        i18n.TextList `json:"features"`
	Challenges      []Challenge   `json:"challenges"`
	TechStack       TechStack     `json:"techStack"`
	Metrics         []Metric      `json:"metrics"`
	Published       bool          `json:"published"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Public is the single-language projection served to the site.
type Public struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Subtitle        string              `json:"subtitle"`
	Description     string              `json:"description"`
	LongDescription string              `json:"longDescription"`
	Image           string              `json:"image"`
	Tags            []string            `json:"tags"`
	GitHub          string              `json:"github,omitempty"`
	Demo            string              `json:"demo,omitempty"`
	Date            string              `json:"date,omitempty"`
	Category        string              `json:"category,omitempty"`
	Color           string              `json:"color,omitempty"`
	Features        []string            `json:"features"`
	Challenges      []PublicChallenge   `json:"challenges"`
	TechStack       map[string][]string `json:"techStack"`
	Metrics         []PublicMetric      `json:"metrics"`
}

// Localize collapses every bilingual field, recursing one level into the
// nested challenge, tech-stack, and metric structures.
func (p *Project) Localize(lang i18n.Lang) *Public {
	challenges := make([]PublicChallenge, len(p.Challenges))
	for i, c := range p.Challenges {
		challenges[i] = c.Localize(lang)
	}

	metrics := make([]PublicMetric, len(p.Metrics))
	for i, m := range p.Metrics {
		metrics[i] = m.Localize(lang)
	}

	return &Public{
		ID:              p.ID,
		Title:           p.Title.In(lang),
		Subtitle:        p.Subtitle.In(lang),
		Description:     p.Description.In(lang),
		LongDescription: p.LongDescription.In(lang),
		Image:           p.Image,
		Tags:            p.Tags,
		GitHub:          p.GitHub,
		Demo:            p.Demo,
		Date:            p.Date,
		Category:        p.Category,
		Color:           p.Color,
		Features:        p.Features.In(lang),
		Challenges:      challenges,
		TechStack:       p.TechStack.In(lang),
		Metrics:         metrics,
	}
}

// # Write Model

// Input is the allow-listed write payload for POST and PUT.
type Input struct {
	ID              *string        `json:"id"`
	Title           *i18n.Text     `json:"title"`
	Subtitle        *i18n.Text     `json:"subtitle"`
	Description     *i18n.Text     `json:"description"`
	LongDescription *i18n.Text     `json:"longDescription"`
	Image           *string        `json:"image"`
	Tags            *[]string      `json:"tags"`
	GitHub          *string        `json:"github"`
	Demo            *string        `json:"demo"`
	Date            *string        `json:"date"`
	Category        *string        `json:"category"`
	Color           *string        `json:"color"`
	Features        *i18n.TextList `json:"features"`
	Challenges      *[]Challenge   `json:"challenges"`
	TechStack       *TechStack     `json:"techStack"`
	Metrics         *[]Metric      `json:"metrics"`
	Published       *bool          `json:"published"`
}

func (in *Input) apply(p *Project) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Subtitle != nil {
		p.Subtitle = *in.Subtitle
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.LongDescription != nil {
		p.LongDescription = *in.LongDescription
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.GitHub != nil {
		p.GitHub = *in.GitHub
	}
	if in.Demo != nil {
		p.Demo = *in.Demo
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Features != nil {
		p.Features = *in.Features
	}
	if in.Challenges != nil {
		p.Challenges = *in.Challenges
	}
	if in.TechStack != nil {
		p.TechStack = *in.TechStack
	}
	if in.Metrics != nil {
		p.Metrics = *in.Metrics
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
}

// # Field Identifiers

const (
	FieldID              = "id"
	FieldTitle           = "title"
	FieldSubtitle        = "subtitle"
	FieldDescription     = "description"
	FieldLongDescription = "longDescription"
	FieldImage           = "image"
)
