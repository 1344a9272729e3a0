package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func rawObject(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return raw
}

func TestRequireFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing string
	}{
		{"all present", `{"key":"x","title":"y"}`, ""},
		{"empty strings count as present", `{"key":"","title":""}`, ""},
		{"absent key", `{"title":"y"}`, "key"},
		{"null title", `{"key":"x","title":null}`, "title"},
		{"null with spaces", `{"key": null ,"title":"y"}`, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireFields(rawObject(t, tt.body), AchievementRequired...)
			if tt.missing == "" {
				if err != nil {
					t.Errorf("RequireFields() = %v, want nil", err)
				}
				return
			}
			var mf *MissingFieldError
			if !errors.As(err, &mf) || mf.Field != tt.missing {
				t.Errorf("RequireFields() = %v, want missing %s", err, tt.missing)
			}
		})
	}
}

func TestRejectNull(t *testing.T) {
	if err := RejectNull(rawObject(t, `{"country":"France"}`), "speed_kmh"); err != nil {
		t.Errorf("absent optional field must be accepted, got %v", err)
	}
	if err := RejectNull(rawObject(t, `{"speed_kmh":450}`), "speed_kmh"); err != nil {
		t.Errorf("numeric value must be accepted, got %v", err)
	}

	err := RejectNull(rawObject(t, `{"speed_kmh":null}`), "speed_kmh")
	var nf *NullFieldError
	if !errors.As(err, &nf) || nf.Field != "speed_kmh" {
		t.Errorf("RejectNull() = %v, want null speed_kmh", err)
	}
	if err.Error() != "speed_kmh must not be null" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
