// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

/*
Package blog implements the bilingual blog-post content resource.

Posts are authored in both English and French through the admin panel and
served to the public site in a single language selected by the ?lang query
parameter.

# Identity

A post is addressed by a numeric public id that appears in article URLs.
That id is chosen by the author and is distinct from any storage identity.
*/
package blog

import (
	"time"

	"github.com/markrahimi/folio/pkg/i18n"
)

// # Domain Entities

// Blog is the full bilingual document, as stored and as returned to admins.
type Blog struct {
	ID        int64     `json:"id"`
	Title     i18n.Text `json:"title"`
	Excerpt   i18n.Text `json:"excerpt"`
	Content   i18n.Text `json:"content"`
	Image     string    `json:"image"`
	Date      string    `json:"date,omitempty"`
	ReadTime  string    `json:"readTime,omitempty"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	Color     string    `json:"color,omitempty"`
	Featured  bool      `json:"featured"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public is the single-language projection served to the site.
type Public struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Date     string   `json:"date,omitempty"`
	ReadTime string   `json:"readTime,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags"`
	Color    string   `json:"color,omitempty"`
	Featured bool     `json:"featured"`
}

// Localize collapses every bilingual field to the requested language.
// Locale-independent fields pass through unchanged.
func (b *Blog) Localize(lang i18n.Lang) *Public {
	return &Public{
		ID:       b.ID,
		Title:    b.Title.In(lang),
		Excerpt:  b.Excerpt.In(lang),
		Content:  b.Content.In(lang),
		Image:    b.Image,
		Date:     b.Date,
		ReadTime: b.ReadTime,
		Category: b.Category,
		Tags:     b.Tags,
		Color:    b.Color,
		Featured: b.Featured,
	}
}

// # Write Model

// Input is the allow-listed write payload for POST and PUT.
//
// Pointer fields distinguish "absent" from "zero value": a PUT only replaces
// the fields the client actually provided. Unknown JSON fields are discarded
// by decoding — nothing client-supplied is ever persisted verbatim.
type Input struct {
	ID        *int64     `json:"id"`
	Title     *i18n.Text `json:"title"`
	Excerpt   *i18n.Text `json:"excerpt"`
	Content   *i18n.Text `json:"content"`
	Image     *string    `json:"image"`
	Date      *string    `json:"date"`
	ReadTime  *string    `json:"readTime"`
	Category  *string    `json:"category"`
	Tags      *[]string  `json:"tags"`
	Color     *string    `json:"color"`
	Featured  *bool      `json:"featured"`
	Published *bool      `json:"published"`
}

// apply copies every provided field onto the document.
func (in *Input) apply(b *Blog) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Excerpt != nil {
		b.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		b.Content = *in.Content
	}
	if in.Image != nil {
		b.Image = *in.Image
	}
	if in.Date != nil {
		b.Date = *in.Date
	}
	if in.ReadTime != nil {
		b.ReadTime = *in.ReadTime
	}
	if in.Category != nil {
		b.Category = *in.Category
	}
	if in.Tags != nil {
		b.Tags = *in.Tags
	}
	if in.Color != nil {
		b.Color = *in.Color
	}
	if in.Featured != nil {
		b.Featured = *in.Featured
	}
	if in.Published != nil {
		b.Published = *in.Published
	}
}

// # Field Identifiers

// Global field names for validation.
const (
	FieldID      = "id"
	FieldTitle   = "title"
	FieldExcerpt = "excerpt"
	FieldContent = "content"
	FieldImage   = "image"
)
