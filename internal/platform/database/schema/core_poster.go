// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package schema

// CorePosterTable represents the 'core.poster' table
type CorePosterTable struct {
	Table           string
	ID              string
	SessionID       string
	Title           string
	Slug            string
	ScholarNames    string
	Institutions    string
	Tags            string
	WhyThisMatters  string
	SummaryProblem  string
	SummaryAudience string
	SummaryMethods  string
	SummaryFindings string
	SummaryChange   string
	WelcomeMessage  string
	FeedbackPrompt  string
	PosterImageURL  string
	PosterPDFURL    string
	ScholarPhotoURL string
	Status          string
	PublishedAt     string
	CreatedAt       string
	UpdatedAt       string
}

// CorePoster is the schema definition for core.poster
var CorePoster = CorePosterTable{
	Table:           "core.poster",
	ID:              "id",
	SessionID:       "sessionid",
	Title:           "title",
	Slug:            "slug",
	ScholarNames:    "scholarnames",
	Institutions:    "institutions",
	Tags:            "tags",
	WhyThisMatters:  "whythismatters",
	SummaryProblem:  "summaryproblem",
	SummaryAudience: "summaryaudience",
	SummaryMethods:  "summarymethods",
	SummaryFindings: "summaryfindings",
	SummaryChange:   "summarychange",
	WelcomeMessage:  "welcomemessage",
	FeedbackPrompt:  "feedbackprompt",
	PosterImageURL:  "posterimageurl",
	PosterPDFURL:    "posterpdfurl",
	ScholarPhotoURL: "scholarphotourl",
	Status:          "status",
	PublishedAt:     "publishedat",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CorePosterTable) Columns() []string {
	return []string{
		t.ID, t.SessionID, t.Title, t.Slug, t.ScholarNames, t.Institutions,
		t.Tags, t.WhyThisMatters, t.SummaryProblem, t.SummaryAudience,
		t.SummaryMethods, t.SummaryFindings, t.SummaryChange, t.WelcomeMessage,
		t.FeedbackPrompt, t.PosterImageURL, t.PosterPDFURL, t.ScholarPhotoURL,
		t.Status, t.PublishedAt, t.CreatedAt, t.UpdatedAt,
	}
}
