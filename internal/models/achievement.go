package models

import (
	"errors"
	"strings"
	"time"
)

// Fields that must be present in request bodies.
var (
	FlightRequired      = []string{"country"}
	AchievementRequired = []string{"key", "title"}
	SessionRequired     = []string{"country", "started_at"}
)

var (
	ErrMissingCountry = errors.New("country is required")
	ErrNegativeLength = errors.New("duration_minutes must not be negative")
	ErrInvalidStart   = errors.New("started_at must be an RFC 3339 timestamp")
	ErrInvalidLanding = errors.New("landed_at must be an RFC 3339 timestamp")
)

// AchievementCreate is the body of POST /achievements.
type AchievementCreate struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Document converts the request into the fields persisted for an achievement.
func (a AchievementCreate) Document() Document {
	return Document{"key": a.Key, "title": a.Title}
}

// SessionCreate is the body of POST /sessions: one study flight.
type SessionCreate struct {
	Country         string  `json:"country"`
	DurationMinutes int     `json:"duration_minutes"`
	StartedAt       string  `json:"started_at"`
	LandedAt        *string `json:"landed_at,omitempty"`
}

// Validate checks the session content. Unlike achievements, a session needs a
// non-blank country.
func (s SessionCreate) Validate() error {
	if strings.TrimSpace(s.Country) == "" {
		return ErrMissingCountry
	}
	if s.DurationMinutes < 0 {
		return ErrNegativeLength
	}
	if _, err := time.Parse(time.RFC3339, s.StartedAt); err != nil {
		return ErrInvalidStart
	}
	if s.LandedAt != nil {
		if _, err := time.Parse(time.RFC3339, *s.LandedAt); err != nil {
			return ErrInvalidLanding
		}
	}
	return nil
}

// Document converts the request into the fields persisted for a session.
func (s SessionCreate) Document() Document {
	doc := Document{
		"country":          s.Country,
		"duration_minutes": s.DurationMinutes,
		"started_at":       s.StartedAt,
	}
	if s.LandedAt != nil {
		doc["landed_at"] = *s.LandedAt
	}
	return doc
}
