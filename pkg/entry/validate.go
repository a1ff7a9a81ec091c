package entry

import (
	"errors"
	"strings"
	"unicode/utf8"

	"tableflip.dev/mindtrackr/pkg/mood"
)

const (
	// MinTextLength and MaxTextLength bound the trimmed text, counted in
	// characters (code points).
	MinTextLength = 3
	MaxTextLength = 2000
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("entry: validation failed")

// Reason identifies which validation rule rejected the input.
type Reason string

const (
	ReasonEmpty       Reason = "empty"
	ReasonTooShort    Reason = "too_short"
	ReasonTooLong     Reason = "too_long"
	ReasonInvalidMood Reason = "invalid_mood"
)

var messages = map[Reason]string{
	ReasonEmpty:       "Please enter some text for your journal entry.",
	ReasonTooShort:    "Journal entry must be at least 3 characters long.",
	ReasonTooLong:     "Journal entry must be less than 2000 characters.",
	ReasonInvalidMood: "Please select a valid mood.",
}

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(r Reason) *ValidationError {
	return &ValidationError{Reason: r, Message: messages[r]}
}

// Validate checks text and mood in a fixed order and reports only the first
// failing rule.
func Validate(text string, m mood.Mood) error {
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case trimmed == "":
		return newValidationError(ReasonEmpty)
	case n < MinTextLength:
		return newValidationError(ReasonTooShort)
	case n > MaxTextLength:
		return newValidationError(ReasonTooLong)
	case !m.Valid():
		return newValidationError(ReasonInvalidMood)
	}
	return nil
}

// TextLength is the length Validate measures, for character counters.
func TextLength(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}
