package entry

import (
	"errors"
	"strings"
	"testing"

	"tableflip.dev/mindtrackr/pkg/mood"
)

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		mood mood.Mood
		want Reason
	}{
		{name: "empty", text: "", mood: mood.Happy, want: ReasonEmpty},
		{name: "whitespace", text: " \n\t ", mood: "bogus", want: ReasonEmpty},
		{name: "short", text: "hi", mood: mood.Happy, want: ReasonTooShort},
		{name: "short beats mood", text: " hi ", mood: "Confused", want: ReasonTooShort},
		{name: "long", text: strings.Repeat("a", MaxTextLength+1), mood: mood.Sad, want: ReasonTooLong},
		{name: "mood", text: "Had a great day!", mood: "Confused", want: ReasonInvalidMood},
		{name: "unset mood", text: "Had a great day!", mood: mood.Unset, want: ReasonInvalidMood},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.text, tc.mood)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Reason != tc.want {
				t.Fatalf("expected reason %s, got %s", tc.want, verr.Reason)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected errors.Is(err, ErrValidation)")
			}
		})
	}
}

func TestValidateBounds(t *testing.T) {
	if err := Validate("abc", mood.Calm); err != nil {
		t.Fatalf("3 characters should pass: %v", err)
	}
	if err := Validate("  "+strings.Repeat("x", MaxTextLength)+"  ", mood.Calm); err != nil {
		t.Fatalf("2000 characters after trim should pass: %v", err)
	}
	// Multi-byte characters count once each.
	if err := Validate("日本語", mood.Calm); err != nil {
		t.Fatalf("3 runes should pass: %v", err)
	}
}

func TestValidateMessages(t *testing.T) {
	err := Validate("hi", mood.Happy)
	if err == nil || err.Error() != "Journal entry must be at least 3 characters long." {
		t.Fatalf("unexpected message: %v", err)
	}
}
