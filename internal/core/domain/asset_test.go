package domain

import (
	"encoding/json"
	"testing"
)

func TestAsset_DownloadURL(t *testing.T) {
	a := Asset{ImageURL: "https://cms.example.com/assets/abc-123"}
	if got := a.DownloadURL(); got != "https://cms.example.com/assets/abc-123?download=true" {
		t.Errorf("DownloadURL() = %q", got)
	}

	if got := (Asset{}).DownloadURL(); got != "" {
		t.Errorf("DownloadURL() on empty asset = %q, want empty", got)
	}
}

func TestAsset_FileName(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://cms.example.com/assets/abc-123", "abc-123"},
		{"https://cms.example.com/assets/", ""},
		{"abc-123", "abc-123"},
		{"", ""},
	}

	for _, tt := range tests {
		got := Asset{ImageURL: tt.url}.FileName()
		if got != tt.expected {
			t.Errorf("FileName(%q) = %q, want %q", tt.url, got, tt.expected)
		}
	}
}

func TestAsset_TagLine(t *testing.T) {
	a := Asset{Tags: []string{"Onboarding", "Retention"}}
	if got := a.TagLine(); got != "Onboarding, Retention" {
		t.Errorf("TagLine() = %q", got)
	}
	if got := (Asset{}).TagLine(); got != "" {
		t.Errorf("TagLine() on untagged asset = %q", got)
	}
}

func TestItem_UnmarshalLists(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		tags     int
		programs int
	}{
		{
			name:     "arrays",
			payload:  `{"asset_image":"a","transition_type":["x","y"],"program_name":["p"]}`,
			tags:     2,
			programs: 1,
		},
		{
			name:     "nulls",
			payload:  `{"asset_image":"a","transition_type":null,"program_name":null}`,
			tags:     0,
			programs: 0,
		},
		{
			name:     "mixed arrays keep strings",
			payload:  `{"asset_image":"a","transition_type":["Gold",null,3,"Renewal"],"program_name":[null,"p"]}`,
			tags:     2,
			programs: 1,
		},
		{
			name:     "scalars",
			payload:  `{"asset_image":"a","transition_type":"x","program_name":7}`,
			tags:     0,
			programs: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item Item
			if err := json.Unmarshal([]byte(tt.payload), &item); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if len(item.TransitionType) != tt.tags {
				t.Errorf("expected %d tags, got %d", tt.tags, len(item.TransitionType))
			}
			if len(item.ProgramName) != tt.programs {
				t.Errorf("expected %d programs, got %d", tt.programs, len(item.ProgramName))
			}
		})
	}
}

func TestUpstreamError(t *testing.T) {
	err := &UpstreamError{Op: "login", StatusCode: 401, Status: "401 Unauthorized", Body: `{"errors":[]}`}
	if got := err.Error(); got != `failed to login: 401 Unauthorized - {"errors":[]}` {
		t.Errorf("Error() = %q", got)
	}

	err.Body = ""
	if got := err.Error(); got != "failed to login: 401 Unauthorized" {
		t.Errorf("Error() without body = %q", got)
	}
}
