// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

// Package schema declares the physical table and column names used by the
// PostgreSQL repositories. Centralizing them keeps hand-built SQL in the
// store layer free of magic strings.
package schema

// CoreSessionTable represents the 'core.session' table
type CoreSessionTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	Status    string
	StartAt   string
	EndAt     string
	CreatedAt string
	UpdatedAt string
}

// CoreSession is the schema definition for core.session
var CoreSession = CoreSessionTable{
	Table:     "core.session",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	Status:    "status",
	StartAt:   "startat",
	EndAt:     "endat",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
