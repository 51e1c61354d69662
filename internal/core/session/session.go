// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

// Package session implements poster session containers: named events that
// group submissions and gate their public visibility.
package session

import "time"

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusDraft hides the session from the public entirely.
	StatusDraft Status = "DRAFT"

	// StatusLive makes the session and its published posters reachable.
	StatusLive Status = "LIVE"

	// StatusArchived keeps the session readable but marks the event as over.
	StatusArchived Status = "ARCHIVED"
)

// Valid reports whether s is a member of the session lifecycle enum.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusLive, StatusArchived:
		return true
	}
	return false
}

// Session is an event grouping poster submissions.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Status    Status     `json:"status"`
	StartAt   *time.Time `json:"start_at"`
	EndAt     *time.Time `json:"end_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Field names used in validation errors, matching the JSON contract.
const (
	FieldName   = "name"
	FieldStatus = "status"
)
