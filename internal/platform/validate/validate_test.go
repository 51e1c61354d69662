// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/validate"
	"github.com/uabcampos/fac-virtual-posters/pkg/pointer"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Example Study", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Bounds tests the character-count rules used for comment content
and the motivation statement.
*/
func TestValidator_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		min     int
		max     int
		isValid bool
	}{
		{"in_range", "Why this research matters", 10, 2000, true},
		{"below_min", "Too short", 10, 2000, false},
		{"at_max", strings.Repeat("x", 2000), 1, 2000, true},
		{"above_max", strings.Repeat("x", 2001), 1, 2000, false},
		{"unicode_counted_by_rune", strings.Repeat("é", 2000), 1, 2000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MinLen("content", tt.value, tt.min).MaxLen("content", tt.value, tt.max)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_URL checks the absolute http(s) URL rule for media fields.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https", "https://cdn.example.org/poster.png", true},
		{"http", "http://cdn.example.org/poster.png", true},
		{"relative_path", "/uploads/poster.png", false},
		{"missing_scheme", "cdn.example.org/poster.png", false},
		{"wrong_scheme", "ftp://cdn.example.org/poster.png", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("poster_image_url", tt.value)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OptionalURL verifies that nullable media URLs pass when absent
but are checked when present.
*/
func TestValidator_OptionalURL(t *testing.T) {
	v := &validate.Validator{}
	v.OptionalURL("poster_pdf_url", nil)
	assert.False(t, v.HasErrors())

	v.OptionalURL("poster_pdf_url", pointer.To("not a url"))
	assert.True(t, v.HasErrors())
}

/*
TestValidator_NonEmptyList verifies the scholar/institution list rule.
*/
func TestValidator_NonEmptyList(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		isValid bool
	}{
		{"one_entry", []string{"Jane Smith"}, true},
		{"several_entries", []string{"Jane Smith", "John Doe"}, true},
		{"nil_list", nil, false},
		{"empty_list", []string{}, false},
		{"blank_entries_only", []string{"", "   "}, false},
		{"one_real_among_blanks", []string{"", "Jane Smith"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.NonEmptyList("scholar_names", tt.values)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_UUID verifies identifier format checking.
*/
func TestValidator_UUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"v7", "0190163d-8694-7ccc-8000-000000000000", true},
		{"uppercase_accepted", "0190163D-8694-7CCC-8000-000000000000", true},
		{"not_a_uuid", "example-study", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.UUID("session_id", tt.value)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API and error accumulation across rules.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").
		OneOf("type", "RANT", "QUESTION", "IDEA", "FEEDBACK").
		Err()

	require.NotNil(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
	assert.Equal(t, "title", ae.Details[0].Field)
	assert.Equal(t, "type", ae.Details[1].Field)
}
