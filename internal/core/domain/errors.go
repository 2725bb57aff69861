package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTokenRequired  = errors.New("token is required")
	ErrNoToken        = errors.New("login response carried no access token")
	ErrAssetNotFound  = errors.New("asset not found")
	ErrFileExists     = errors.New("file already exists")
	ErrNotConfigured  = errors.New("cms endpoint is not configured")
	ErrNoCredentials  = errors.New("cms credentials are not configured")
	ErrEmptyAssetName = errors.New("asset has no image")
)

// UpstreamError is a non-2xx answer from the CMS
type UpstreamError struct {
	Op         string // "login", "fetch content", "download"
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("failed to %s: %s", e.Op, e.Status)
	}
	return fmt.Sprintf("failed to %s: %s - %s", e.Op, e.Status, e.Body)
}
