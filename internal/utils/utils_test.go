package utils

import (
	"strings"
	"testing"
)

func TestTopicNameValidator(t *testing.T) {
	v := &TopicNameValidator{}

	testCases := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "valid", input: "gophers", expectErr: false},
		{name: "minimum length", input: "go", expectErr: false},
		{name: "too short", input: "g", expectErr: true},
		{name: "empty", input: "", expectErr: true},
		{name: "maximum length", input: strings.Repeat("a", 40), expectErr: false},
		{name: "too long", input: strings.Repeat("a", 41), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Name(tc.input)
			if tc.expectErr && err == nil {
				t.Errorf("Name(%q) = nil, expected error", tc.input)
			}
			if !tc.expectErr && err != nil {
				t.Errorf("Name(%q) = %v, expected nil", tc.input, err)
			}
		})
	}
}

func TestPostValidator(t *testing.T) {
	v := &PostValidator{}

	if err := v.Title("hi"); err != nil {
		t.Errorf("Title(hi) = %v, expected nil", err)
	}
	if err := v.Title("x"); err == nil {
		t.Error("Title(x) = nil, expected error")
	}
	if err := v.Title(strings.Repeat("a", 31)); err == nil {
		t.Error("expected error for 31-char title")
	}
	if err := v.Content(""); err == nil {
		t.Error("Content(empty) = nil, expected error")
	}
	if err := v.Content(strings.Repeat("a", 1025)); err == nil {
		t.Error("expected error for oversized content")
	}
	if err := v.Content("hello"); err != nil {
		t.Errorf("Content(hello) = %v, expected nil", err)
	}
}
