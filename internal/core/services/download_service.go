package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/ports"
)

// DownloadService saves asset images to disk
type DownloadService struct {
	fetcher ports.AssetFetcher
}

// NewDownloadService creates a new download service
func NewDownloadService(fetcher ports.AssetFetcher) *DownloadService {
	return &DownloadService{
		fetcher: fetcher,
	}
}

// DownloadRequest represents a request to save one asset
type DownloadRequest struct {
	Asset     domain.Asset
	Dir       string
	Overwrite bool
}

// DownloadResponse describes the saved file
type DownloadResponse struct {
	Path  string
	Bytes int64
}

// Execute fetches the asset's download URL into Dir, named after the URL's last segment
func (s *DownloadService) Execute(ctx context.Context, req DownloadRequest) (*DownloadResponse, error) {
	name := req.Asset.FileName()
	if name == "" || req.Asset.ImageName == "" {
		return nil, domain.ErrEmptyAssetName
	}

	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(name))

	// Reserve the name so a concurrent download of the same asset fails too
	reserved := false
	if !req.Overwrite {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("%w: %s", domain.ErrFileExists, path)
			}
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		f.Close()
		reserved = true
	}

	n, err := s.fetchToTemp(ctx, req.Asset.DownloadURL(), dir, path)
	if err != nil {
		if reserved {
			os.Remove(path)
		}
		return nil, fmt.Errorf("failed to download %s: %w", name, err)
	}

	return &DownloadResponse{
		Path:  path,
		Bytes: n,
	}, nil
}

// fetchToTemp streams url into a temp file in dir and renames it onto path.
// path is untouched unless the whole body arrived.
func (s *DownloadService) fetchToTemp(ctx context.Context, url, dir, path string) (int64, error) {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	n, err := s.fetcher.Fetch(ctx, url, tmp)
	closeErr := tmp.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write %s: %w", tmpPath, closeErr)
	}
	if err == nil {
		err = os.Chmod(tmpPath, 0644)
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		os.Remove(tmpPath)
		return 0, err
	}
	return n, nil
}
