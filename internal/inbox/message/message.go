// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package message implements the contact-form inbox.
//
// Visitors submit messages through the public form; admins triage them
// through a read/unread/archived status. Messages are never localized.
package message

import "time"

// Message statuses. New submissions always start unread.
const (
	StatusUnread   = "unread"
	StatusRead     = "read"
	StatusArchived = "archived"
)

// Message is a single contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitInput is the public form payload. All four fields are required.
type SubmitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// StatusInput is the admin triage payload; status is the only mutable field.
type StatusInput struct {
	Status string `json:"status"`
}
