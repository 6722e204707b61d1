package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shinji-kodama/mazegen/internal/render"
)

// ValidationError represents a specific validation failure in a Config.
type ValidationError struct {
	// Field is the config key that failed validation (e.g., "charset.wall").
	Field string

	// Message describes what's wrong with the field value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Validate checks the settings the generator does not check itself.
// Dimension limits are left to the generator so they surface with their
// own exit code. It returns an empty list for a valid configuration.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	glyphs := []struct {
		field string
		value string
	}{
		{"charset.wall", c.Charset.Wall},
		{"charset.path", c.Charset.Path},
		{"charset.marked", c.Charset.Marked},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			errs = append(errs, ValidationError{
				Field:   g.field,
				Message: fmt.Sprintf("must be exactly one character, got %q", g.value),
			})
		}
	}

	// Walls and paths drawn alike would make the maze unreadable.
	if c.Charset.Wall != "" && c.Charset.Wall == c.Charset.Path {
		errs = append(errs, ValidationError{
			Field:   "charset.path",
			Message: "must differ from charset.wall",
		})
	}

	return errs
}

// JoinValidationErrors flattens a list of validation errors into one
// message, or returns "" for an empty list.
func JoinValidationErrors(errs []ValidationError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// RenderCharset converts the glyph strings to a render.Charset.
// Call Validate first; invalid glyphs fall back to the defaults.
func (c *Config) RenderCharset() render.Charset {
	cs := render.DefaultCharset
	if r, ok := singleRune(c.Charset.Wall); ok {
		cs.Wall = r
	}
	if r, ok := singleRune(c.Charset.Path); ok {
		cs.Path = r
	}
	if r, ok := singleRune(c.Charset.Marked); ok {
		cs.Marked = r
	}
	return cs
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
