package validate

import (
	"testing"

	"limoapi/internal/domain"
)

type slugPayload struct {
	Slug  string `json:"slug" validate:"required,slug"`
	Title string `json:"title" validate:"required,min=3,max=100"`
}

func TestStructReportsEveryViolation(t *testing.T) {
	err := Struct(slugPayload{Slug: "Bad Slug!", Title: "ab"})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var verr domain.ValidationError
	if !domain.IsValidation(err) {
		t.Fatalf("expected domain.ValidationError, got %T", err)
	}
	verr = err.(domain.ValidationError)
	if len(verr.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(verr.Issues), verr.Issues)
	}

	fields := map[string]string{}
	for _, is := range verr.Issues {
		fields[is.Field] = is.Msg
	}
	if _, ok := fields["slug"]; !ok {
		t.Fatalf("issue should use the json field name, got %v", fields)
	}
	if fields["title"] != "must be at least 3 characters" {
		t.Fatalf("unexpected title message %q", fields["title"])
	}
}

func TestStructPassesValidPayload(t *testing.T) {
	if err := Struct(slugPayload{Slug: "airport-transfer", Title: "Airport Transfer"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestIsSlug(t *testing.T) {
	valid := []string{"a", "one-way", "party-bus-25", "x9"}
	for _, s := range valid {
		if !IsSlug(s) {
			t.Fatalf("%q should be a valid slug", s)
		}
	}
	invalid := []string{"", "-lead", "trail-", "UPPER", "two--dashes", "with space", "dot.com"}
	for _, s := range invalid {
		if IsSlug(s) {
			t.Fatalf("%q should not be a valid slug", s)
		}
	}
}

type statusPayload struct {
	Status string `json:"status" validate:"required,oneof=NEW READ REPLIED ARCHIVED"`
}

func TestStructOneOfMessageListsValues(t *testing.T) {
	err := Struct(statusPayload{Status: "SPAM"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	verr := err.(domain.ValidationError)
	if verr.Issues[0].Msg != "must be one of: NEW, READ, REPLIED, ARCHIVED" {
		t.Fatalf("unexpected message %q", verr.Issues[0].Msg)
	}
}
