// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table       string
	ID          string
	PosterID    string
	ParentID    string
	AuthorName  string
	AuthorRole  string
	IsAnonymous string
	Type        string
	Content     string
	LikeCount   string
	IsHidden    string
	CreatedAt   string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:       "social.comment",
	ID:          "id",
	PosterID:    "posterid",
	ParentID:    "parentid",
	AuthorName:  "authorname",
	AuthorRole:  "authorrole",
	IsAnonymous: "isanonymous",
	Type:        "commenttype",
	Content:     "content",
	LikeCount:   "likecount",
	IsHidden:    "ishidden",
	CreatedAt:   "createdat",
}

func (t SocialCommentTable) Columns() []string {
	return []string{
		t.ID, t.PosterID, t.ParentID, t.AuthorName, t.AuthorRole, t.IsAnonymous,
		t.Type, t.Content, t.LikeCount, t.IsHidden, t.CreatedAt,
	}
}
