// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

/*
Package comment implements the conversation panel beneath each poster:
threaded comments with a single level of nesting, anonymous like counters,
scholar reply detection, and the hide/delete moderation surface.
*/
package comment

import (
	"strings"
	"time"
)

// # Taxonomy

// Type categorizes a comment for the conversation panel's filter chips.
type Type string

const (
	TypeQuestion Type = "QUESTION"
	TypeIdea     Type = "IDEA"
	TypeFeedback Type = "FEEDBACK"
)

// Valid reports whether t is a member of the comment taxonomy.
func (t Type) Valid() bool {
	switch t {
	case TypeQuestion, TypeIdea, TypeFeedback:
		return true
	}
	return false
}

// # Entities

// Comment is one entry in a poster's conversation.
//
// Nesting is exactly one level deep: a comment either has no parent (a
// top-level comment) or its parent is itself top-level. This is enforced at
// the write boundary, so readers may assume threads never recurse.
type Comment struct {
	ID       string  `json:"id"`
	PosterID string  `json:"poster_id"`
	ParentID *string `json:"parent_id"`

	// AuthorName is self-reported and optional; there are no visitor
	// accounts. Nil means the author gave no name at all.
	AuthorName *string `json:"author_name"`

	// AuthorRole is free-form ("Scholar", "Faculty", ...). The literal
	// value "Scholar" marks a reply as coming from the poster's presenter.
	AuthorRole *string `json:"author_role"`

	// IsAnonymous hides the author's identity in the conversation panel
	// even when a name was typed.
	IsAnonymous bool `json:"is_anonymous"`

	Type    Type   `json:"type"`
	Content string `json:"content"`

	LikeCount int  `json:"like_count"`
	IsHidden  bool `json:"is_hidden"`

	CreatedAt time.Time `json:"created_at"`

	// PosterTitle is a dashboard annotation, populated only by Recent.
	PosterTitle string `json:"poster_title,omitempty"`
}

// Thread is a top-level comment hydrated for the conversation panel, with
// scholar attribution resolved and replies attached oldest-first.
type Thread struct {
	*Comment
	IsScholar   bool     `json:"is_scholar"`
	DisplayName string   `json:"display_name"`
	Replies     []*Reply `json:"replies"`
}

// Reply is a nested comment with scholar attribution resolved.
type Reply struct {
	*Comment
	IsScholar   bool   `json:"is_scholar"`
	DisplayName string `json:"display_name"`
}

// # Scholar Identity

// foldName normalizes an author name for identity comparison: interior
// whitespace collapses to single spaces, surrounding whitespace is dropped,
// and the comparison is case-insensitive.
func foldName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// isScholar reports whether a comment should carry the scholar badge.
//
// Two independent signals grant it: the author explicitly selected the
// Scholar role, or the self-reported name matches the poster's primary
// scholar after folding. The second path keeps the badge working when a
// presenter replies without picking the role dropdown; it is skipped for
// anonymous comments so the badge can't reveal who wrote one.
func isScholar(c *Comment, primaryScholar string) bool {
	if c.AuthorRole != nil && *c.AuthorRole == "Scholar" {
		return true
	}
	if c.IsAnonymous || c.AuthorName == nil {
		return false
	}
	return primaryScholar != "" && foldName(*c.AuthorName) == foldName(primaryScholar)
}

// displayName resolves the name shown next to the scholar badge. A scholar
// who typed their own name (and did not post anonymously) keeps it;
// otherwise the poster's primary scholar name stands in.
func displayName(c *Comment, primaryScholar string) string {
	if c.AuthorRole != nil && *c.AuthorRole == "Scholar" && !c.IsAnonymous &&
		c.AuthorName != nil && *c.AuthorName != "" {
		return *c.AuthorName
	}
	return primaryScholar
}

// # Field Identifiers

// Field names used in validation errors, matching the JSON contract.
const (
	FieldPosterID   = "poster_id"
	FieldParentID   = "parent_id"
	FieldAuthorName = "author_name"
	FieldType       = "type"
	FieldContent    = "content"
	FieldIsHidden   = "is_hidden"
)

// MaxContentLen caps comment bodies.
const MaxContentLen = 2000
