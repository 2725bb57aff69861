package domain

import (
	"strings"
)

// Asset is the display model of a published creative asset
type Asset struct {
	ImageName   string   `json:"image_name"`   // CMS file id, doubles as alt text
	ImageURL    string   `json:"image_url"`    // {assetBase}/assets/{id}
	ContentName string   `json:"content_name"` // Label for the copy action
	Content     string   `json:"content"`      // Message body, newlines as <br>
	Tags        []string `json:"tags"`
	Programs    []string `json:"programs"`
}

// DownloadURL returns the image URL asking the CMS for an attachment response
func (a Asset) DownloadURL() string {
	if a.ImageURL == "" {
		return ""
	}
	return a.ImageURL + "?download=true"
}

// FileName returns the last path segment of the image URL
func (a Asset) FileName() string {
	return a.ImageURL[strings.LastIndex(a.ImageURL, "/")+1:]
}

// HasTag reports whether the asset carries the exact tag
func (a Asset) HasTag(tag string) bool {
	return contains(a.Tags, tag)
}

// InProgram reports whether the asset is labelled with the exact program
func (a Asset) InProgram(program string) bool {
	return contains(a.Programs, program)
}

// TagLine joins tags the way the "Use Case" column shows them
func (a Asset) TagLine() string {
	return strings.Join(a.Tags, ", ")
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
