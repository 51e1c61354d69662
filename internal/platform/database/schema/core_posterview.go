// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package schema

// CorePosterViewTable represents the 'core.posterview' table
type CorePosterViewTable struct {
	Table      string
	ID         string
	PosterID   string
	ViewerHash string
	CreatedAt  string
}

// CorePosterView is the schema definition for core.posterview
var CorePosterView = CorePosterViewTable{
	Table:      "core.posterview",
	ID:         "id",
	PosterID:   "posterid",
	ViewerHash: "viewerhash",
	CreatedAt:  "createdat",
}
