package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/ports"
	"github.com/kamal-hamza/gallery-cli/pkg/richtext"
)

// GalleryService loads published assets and filters them for the viewers
type GalleryService struct {
	tokens    ports.TokenSource
	content   ports.ContentSource
	assetBase string
}

// NewGalleryService creates a new gallery service.
// assetBase is the public CMS URL images are served from.
func NewGalleryService(tokens ports.TokenSource, content ports.ContentSource, assetBase string) *GalleryService {
	return &GalleryService{
		tokens:    tokens,
		content:   content,
		assetBase: strings.TrimRight(assetBase, "/"),
	}
}

// LoadRequest represents a request to load the gallery
type LoadRequest struct {
	Program string // Server-side program substring (optional)
}

// LoadResponse represents the loaded gallery
type LoadResponse struct {
	Assets   []domain.Asset
	Programs []string // Unique, first-seen order
	Tags     []string // Unique, first-seen order
	Total    int
}

// Load logs in, fetches the published items and transforms them
func (s *GalleryService) Load(ctx context.Context, req LoadRequest) (*LoadResponse, error) {
	token, err := s.tokens.Login(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain token: %w", err)
	}

	items, err := s.content.Items(ctx, token, req.Program)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	assets := ToAssets(items, s.assetBase)

	return &LoadResponse{
		Assets:   assets,
		Programs: UniqueValues(assets, func(a domain.Asset) []string { return a.Programs }),
		Tags:     UniqueValues(assets, func(a domain.Asset) []string { return a.Tags }),
		Total:    len(assets),
	}, nil
}

// Filter applies the program stage, then the tag stage, preserving order
func (s *GalleryService) Filter(assets []domain.Asset, filter domain.Filter) []domain.Asset {
	return FilterAssets(assets, filter)
}

// FilterAssets is Filter without a service receiver
func FilterAssets(assets []domain.Asset, filter domain.Filter) []domain.Asset {
	filter = filter.Normalize()
	if filter.IsAll() {
		return assets
	}

	filtered := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		if filter.Matches(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Find returns the asset with the given image name
func (s *GalleryService) Find(assets []domain.Asset, imageName string) (domain.Asset, error) {
	for _, a := range assets {
		if a.ImageName == imageName {
			return a, nil
		}
	}
	return domain.Asset{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, imageName)
}

// Search narrows assets to those whose name, plain-text message or tags contain query
func (s *GalleryService) Search(assets []domain.Asset, query string) []domain.Asset {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return assets
	}

	var matches []domain.Asset
	for _, a := range assets {
		haystack := strings.ToLower(a.ImageName + " " + richtext.PlainText(a.Content) + " " + a.TagLine())
		if strings.Contains(haystack, query) {
			matches = append(matches, a)
		}
	}
	return matches
}

// ToAsset maps a CMS item to the display model
func ToAsset(item domain.Item, assetBase string) domain.Asset {
	tags := []string(item.TransitionType)
	if tags == nil {
		tags = []string{}
	}
	programs := []string(item.ProgramName)
	if programs == nil {
		programs = []string{}
	}

	return domain.Asset{
		ImageName:   item.AssetImage,
		ImageURL:    fmt.Sprintf("%s/assets/%s", strings.TrimRight(assetBase, "/"), item.AssetImage),
		ContentName: item.AssetImage,
		Content:     richtext.NormalizeNewlines(item.AssetMessage),
		Tags:        tags,
		Programs:    programs,
	}
}

// ToAssets maps every item
func ToAssets(items []domain.Item, assetBase string) []domain.Asset {
	assets := make([]domain.Asset, 0, len(items))
	for _, item := range items {
		assets = append(assets, ToAsset(item, assetBase))
	}
	return assets
}

// UniqueValues flattens the selected field of every asset, dropping repeats
func UniqueValues(assets []domain.Asset, selector func(domain.Asset) []string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, a := range assets {
		for _, v := range selector(a) {
			if seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}
