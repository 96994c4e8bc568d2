// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

/*
Package i18n models the bilingual content fields used across the portfolio.

Every user-facing string in the site exists in an English and a French variant.
Instead of hand-writing an {en, fr} pair per field per resource, this package
provides a single generic wrapper so the localization projection is written once.

Key Types:

  - Lang: A closed language tag set ("en", "fr").
  - Localized[T]: A parallel EN/FR pair of any value type.
  - Text / TextList: The two concrete shapes used by the content schemas.
*/
package i18n

import "net/http"

// Lang is a supported content language tag.
type Lang string

const (
	// LangEN is English, the default language of the site.
	LangEN Lang = "en"

	// LangFR is French.
	LangFR Lang = "fr"
)

// QueryParam is the query-string parameter that selects the projection language.
const QueryParam = "lang"

// Parse maps an arbitrary string to a supported [Lang].
//
// Unknown or empty values fall back to [LangEN]. Public read endpoints rely on
// this so that a missing or garbage ?lang= never fails a request.
func Parse(raw string) Lang {
	switch raw {
	case string(LangFR):
		return LangFR
	default:
		return LangEN
	}
}

// FromRequest reads the projection language from the request query string.
func FromRequest(request *http.Request) Lang {
	return Parse(request.URL.Query().Get(QueryParam))
}

// Requested reports whether the client explicitly asked for a projection.
//
// Singleton endpoints (about, settings) return the full bilingual document
// when no language is requested, because the site's language switcher flips
// between both branches client-side without a refetch.
func Requested(request *http.Request) bool {
	return request.URL.Query().Has(QueryParam)
}

// Localized holds the English and French variants of a value.
//
// It is the canonical shape of every bilingual field in the content model.
// Both branches must be populated before a document is considered complete;
// the service layer enforces this on writes.
type Localized[T any] struct {
	EN T `json:"en"`
	FR T `json:"fr"`
}

// In returns the branch for the given language.
//
// This is the localization projection: public single-language reads collapse
// each bilingual field through In, while admin reads skip it and return the
// whole wrapper so both languages can be edited at once.
func (l Localized[T]) In(lang Lang) T {
	if lang == LangFR {
		return l.FR
	}
	return l.EN
}

// Text is a bilingual string field.
type Text = Localized[string]

// TextList is a bilingual string-array field (achievements, courses, features).
type TextList = Localized[[]string]

// NewText builds a [Text] from its two branches. Mostly used by tests and seeds.
func NewText(en, fr string) Text {
	return Text{EN: en, FR: fr}
}
