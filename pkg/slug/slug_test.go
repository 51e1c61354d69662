// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uabcampos/fac-virtual-posters/pkg/slug"
)

/*
TestFrom verifies the title-to-slug transformation pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Example Study", "example-study"},
		{"punctuation_stripped", "Hello, World!", "hello-world"},
		{"whitespace_runs_collapse", "Multiple   Spaces\tHere", "multiple-spaces-here"},
		{"accents_removed", "Café Étude", "cafe-etude"},
		{"existing_hyphens_kept", "Community-Based Stroke Care", "community-based-stroke-care"},
		{"underscores_kept", "cohort_2025 review", "cohort_2025-review"},
		{"mixed_case", "IMPROVING Diabetes Outcomes", "improving-diabetes-outcomes"},
		{"digits_kept", "Top 10 Findings", "top-10-findings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestWithSuffix verifies collision suffix formatting.
*/
func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "example-study-1", slug.WithSuffix("example-study", 1))
	assert.Equal(t, "example-study-12", slug.WithSuffix("example-study", 12))
}
