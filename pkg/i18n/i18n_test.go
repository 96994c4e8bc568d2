// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package i18n_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markrahimi/folio/pkg/i18n"
)

/*
TestParse checks the language tag fallback behavior.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want i18n.Lang
	}{
		{"english", "en", i18n.LangEN},
		{"french", "fr", i18n.LangFR},
		{"empty_defaults_to_english", "", i18n.LangEN},
		{"garbage_defaults_to_english", "de", i18n.LangEN},
		{"uppercase_is_not_recognized", "FR", i18n.LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Parse(tt.raw))
		})
	}
}

/*
TestLocalized_In verifies the projection picks the right branch.
*/
func TestLocalized_In(t *testing.T) {
	text := i18n.NewText("Hello", "Bonjour")

	assert.Equal(t, "Hello", text.In(i18n.LangEN))
	assert.Equal(t, "Bonjour", text.In(i18n.LangFR))

	list := i18n.TextList{EN: []string{"one"}, FR: []string{"un"}}
	assert.Equal(t, []string{"un"}, list.In(i18n.LangFR))
}

/*
TestFromRequest covers query-string extraction and the explicit-request check.
*/
func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/api/blogs?lang=fr", nil)
	assert.Equal(t, i18n.LangFR, i18n.FromRequest(request))
	assert.True(t, i18n.Requested(request))

	request = httptest.NewRequest("GET", "/api/about", nil)
	assert.Equal(t, i18n.LangEN, i18n.FromRequest(request))
	assert.False(t, i18n.Requested(request))

	// An empty but present parameter is still an explicit request.
	request = httptest.NewRequest("GET", "/api/about?lang=", nil)
	assert.True(t, i18n.Requested(request))
	assert.Equal(t, i18n.LangEN, i18n.FromRequest(request))
}
