// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package education implements the education timeline resource.
package education

import (
	"time"

	"github.com/markrahimi/folio/pkg/i18n"
)

// Status of a degree. Statuses are stored verbatim, capitalized.
const (
	StatusOngoing   = "Ongoing"
	StatusCompleted = "Completed"
)

// Education is the full bilingual document, as stored and as returned to admins.
type Education struct {
	ID          string        `json:"id"`
	Degree      i18n.Text     `json:"degree"`
	Status      string        `json:"status"`
	Institution i18n.Text     `json:"institution"`
	Location    i18n.Text     `json:"location"`
	Year        string        `json:"year,omitempty"`
	Courses     i18n.TextList `json:"courses"`
	Color       string        `json:"color,omitempty"`
	Order       int           `json:"order"`
	Published   bool          `json:"published"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Public is the single-language projection served to the site.
type Public struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	Status      string   `json:"status"`
	Institution string   `json:"institution"`
	Location    string   `json:"location,omitempty"`
	Year        string   `json:"year,omitempty"`
	Courses     []string `json:"courses"`
	Color       string   `json:"color,omitempty"`
	Order       int      `json:"order"`
}

// Localize collapses every bilingual field to the requested language.
func (e *Education) Localize(lang i18n.Lang) *Public {
	return &Public{
		ID:          e.ID,
		Degree:      e.Degree.In(lang),
		Status:      e.Status,
		Institution: e.Institution.In(lang),
		Location:    e.Location.In(lang),
		Year:        e.Year,
		Courses:     e.Courses.In(lang),
		Color:       e.Color,
		Order:       e.Order,
	}
}

// Input is the allow-listed write payload for POST and PUT.
type Input struct {
	Degree      *i18n.Text     `json:"degree"`
	Status      *string        `json:"status"`
	Institution *i18n.Text     `json:"institution"`
	Location    *i18n.Text     `json:"location"`
	Year        *string        `json:"year"`
	Courses     *i18n.TextList `json:"courses"`
	Color       *string        `json:"color"`
	Order       *int           `json:"order"`
	Published   *bool          `json:"published"`
}

func (in *Input) apply(e *Education) {
	if in.Degree != nil {
		e.Degree = *in.Degree
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Institution != nil {
		e.Institution = *in.Institution
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Year != nil {
		e.Year = *in.Year
	}
	if in.Courses != nil {
		e.Courses = *in.Courses
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

const (
	FieldDegree      = "degree"
	FieldStatus      = "status"
	FieldInstitution = "institution"
)
