package ports

import (
	"context"
	"encoding/json"
	"io"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
)

// TokenSource defines the port for exchanging the service credential for a bearer token
type TokenSource interface {
	// Login returns a fresh access token
	Login(ctx context.Context) (string, error)
}

// ContentSource defines the port for reading published items from the CMS
type ContentSource interface {
	// RawItems returns the items untouched, as the proxy forwards them
	RawItems(ctx context.Context, token, program string) ([]json.RawMessage, error)

	// Items returns the same items decoded
	Items(ctx context.Context, token, program string) ([]domain.Item, error)
}

// AssetFetcher defines the port for streaming an asset file
type AssetFetcher interface {
	// Fetch copies the body at url into w and returns the byte count
	Fetch(ctx context.Context, url string, w io.Writer) (int64, error)
}

// CMS is everything the gallery needs from the backend
type CMS interface {
	TokenSource
	ContentSource
	AssetFetcher
}

// FileOpener defines the port for opening files or URLs with default applications
type FileOpener interface {
	// Open opens a path or URL with the system's default application
	Open(ctx context.Context, target string) error
}

// Clipboard defines the port for the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
