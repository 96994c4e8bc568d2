// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package certificate implements the certifications resource.
//
// Certificates have no draft concept; visibility is controlled by the
// isActive flag, and the public listing doubles as the admin listing.
package certificate

import (
	"time"

	"github.com/markrahimi/folio/pkg/i18n"
)

// Certificate is the full bilingual document.
//
// IssueDate and ExpiryDate carry "YYYY-MM" strings; the server stores them
// verbatim and leaves formatting to the client.
type Certificate struct {
	ID            string    `json:"id"`
	Name          i18n.Text `json:"name"`
	Issuer        i18n.Text `json:"issuer"`
	IssueDate     string    `json:"issueDate"`
	ExpiryDate    *string   `json:"expiryDate,omitempty"`
	CredentialID  *string   `json:"credentialID,omitempty"`
	CredentialURL *string   `json:"credentialURL,omitempty"`
	Description   i18n.Text `json:"description"`
	Order         int       `json:"order"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Public is the single-language projection.
type Public struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	IssueDate     string  `json:"issueDate"`
	ExpiryDate    *string `json:"expiryDate,omitempty"`
	CredentialID  *string `json:"credentialID,omitempty"`
	CredentialURL *string `json:"credentialURL,omitempty"`
	Description   string  `json:"description"`
	Order         int     `json:"order"`
}

// Localize collapses every bilingual field to the requested language.
func (c *Certificate) Localize(lang i18n.Lang) *Public {
	return &Public{
		ID:            c.ID,
		Name:          c.Name.In(lang),
		Issuer:        c.Issuer.In(lang),
		IssueDate:     c.IssueDate,
		ExpiryDate:    c.ExpiryDate,
		CredentialID:  c.CredentialID,
		CredentialURL: c.CredentialURL,
		Description:   c.Description.In(lang),
		Order:         c.Order,
	}
}

// Input is the allow-listed write payload for POST and PUT.
type Input struct {
	Name          *i18n.Text `json:"name"`
	Issuer        *i18n.Text `json:"issuer"`
	IssueDate     *string    `json:"issueDate"`
	ExpiryDate    *string    `json:"expiryDate"`
	CredentialID  *string    `json:"credentialID"`
	CredentialURL *string    `json:"credentialURL"`
	Description   *i18n.Text `json:"description"`
	Order         *int       `json:"order"`
	IsActive      *bool      `json:"isActive"`
}

func (in *Input) apply(c *Certificate) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Issuer != nil {
		c.Issuer = *in.Issuer
	}
	if in.IssueDate != nil {
		c.IssueDate = *in.IssueDate
	}
	if in.ExpiryDate != nil {
		c.ExpiryDate = in.ExpiryDate
	}
	if in.CredentialID != nil {
		c.CredentialID = in.CredentialID
	}
	if in.CredentialURL != nil {
		c.CredentialURL = in.CredentialURL
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
}

const (
	FieldName        = "name"
	FieldIssuer      = "issuer"
	FieldIssueDate   = "issueDate"
	FieldDescription = "description"
)
