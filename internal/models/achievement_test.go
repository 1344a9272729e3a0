package models

import (
	"testing"
	"time"
)

func TestAchievementCreate_Document(t *testing.T) {
	doc := AchievementCreate{Key: "", Title: ""}.Document()
	if doc["key"] != "" || doc["title"] != "" {
		t.Errorf("expected empty strings to be kept, got %v", doc)
	}
}

func TestSessionCreate_Validate(t *testing.T) {
	start := "2024-03-01T09:00:00Z"
	badLanding := "yesterday"
	goodLanding := "2024-03-01T16:19:00+05:30"

	tests := []struct {
		name     string
		req      SessionCreate
		expected error
	}{
		{"valid", SessionCreate{Country: "France", DurationMinutes: 439, StartedAt: start}, nil},
		{"valid with landing", SessionCreate{Country: "France", DurationMinutes: 439, StartedAt: start, LandedAt: &goodLanding}, nil},
		{"missing country", SessionCreate{DurationMinutes: 10, StartedAt: start}, ErrMissingCountry},
		{"negative duration", SessionCreate{Country: "Japan", DurationMinutes: -1, StartedAt: start}, ErrNegativeLength},
		{"bad start", SessionCreate{Country: "Japan", StartedAt: "monday"}, ErrInvalidStart},
		{"bad landing", SessionCreate{Country: "Japan", StartedAt: start, LandedAt: &badLanding}, ErrInvalidLanding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); err != tt.expected {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestSessionCreate_Document(t *testing.T) {
	landed := "2024-03-01T16:19:00Z"
	doc := SessionCreate{Country: "France", DurationMinutes: 439, StartedAt: "2024-03-01T09:00:00Z"}.Document()
	if _, ok := doc["landed_at"]; ok {
		t.Errorf("expected no landed_at when not provided, got %v", doc["landed_at"])
	}

	doc = SessionCreate{Country: "France", StartedAt: "2024-03-01T09:00:00Z", LandedAt: &landed}.Document()
	if doc["landed_at"] != landed {
		t.Errorf("expected landed_at %q, got %v", landed, doc["landed_at"])
	}
}

func TestDocument_Clone(t *testing.T) {
	var nilDoc Document
	clone := nilDoc.Clone()
	if clone == nil || len(clone) != 0 {
		t.Errorf("expected empty non-nil clone, got %v", clone)
	}

	orig := Document{"key": "x"}
	clone = orig.Clone()
	clone["title"] = "y"
	if _, ok := orig["title"]; ok {
		t.Error("clone must not alias the original")
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2024, 3, 1, 14, 30, 0, 0, loc)
	if got := FormatTimestamp(ts); got != "2024-03-01T09:00:00Z" {
		t.Errorf("FormatTimestamp() = %s, want 2024-03-01T09:00:00Z", got)
	}
}
