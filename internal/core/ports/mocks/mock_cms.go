package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
)

// MockCMS is an in-memory implementation of ports.CMS for testing
type MockCMS struct {
	mu sync.RWMutex

	Token    string
	LoginErr error
	FetchErr error

	items  []domain.Item
	files  map[string]string
	logins int
	// programs records the program argument of every fetch
	programs []string
}

// NewMockCMS creates a mock that hands out the given token
func NewMockCMS(token string) *MockCMS {
	return &MockCMS{
		Token: token,
		files: make(map[string]string),
	}
}

// AddItem appends an item to the collection
func (m *MockCMS) AddItem(item domain.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item.Status == "" {
		item.Status = domain.StatusPublished
	}
	m.items = append(m.items, item)
}

// AddFile registers downloadable content under a URL
func (m *MockCMS) AddFile(url, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[url] = content
}

// Login returns the configured token
func (m *MockCMS) Login(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logins++
	if m.LoginErr != nil {
		return "", m.LoginErr
	}
	return m.Token, nil
}

// Items returns published items, narrowed by a case-insensitive program substring
func (m *MockCMS) Items(ctx context.Context, token, program string) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.programs = append(m.programs, program)

	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	if token != m.Token {
		return nil, &domain.UpstreamError{Op: "fetch content", StatusCode: 401, Status: "401 Unauthorized"}
	}
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}

	var out []domain.Item
	for _, item := range m.items {
		if item.Status != domain.StatusPublished {
			continue
		}
		if program != "" && !anyContains(item.ProgramName, program) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// RawItems returns Items encoded back to JSON
func (m *MockCMS) RawItems(ctx context.Context, token, program string) ([]json.RawMessage, error) {
	items, err := m.Items(ctx, token, program)
	if err != nil {
		return nil, err
	}

	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		raw = append(raw, data)
	}
	return raw, nil
}

// Fetch writes a registered file
func (m *MockCMS) Fetch(ctx context.Context, url string, w io.Writer) (int64, error) {
	m.mu.RLock()
	content, ok := m.files[url]
	m.mu.RUnlock()

	if !ok {
		return 0, &domain.UpstreamError{Op: "download", StatusCode: 404, Status: "404 Not Found"}
	}
	n, err := io.WriteString(w, content)
	return int64(n), err
}

// Logins returns how many times Login was called
func (m *MockCMS) Logins() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logins
}

// LastProgram returns the program argument of the latest fetch
func (m *MockCMS) LastProgram() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.programs) == 0 {
		return "", fmt.Errorf("no fetch recorded")
	}
	return m.programs[len(m.programs)-1], nil
}

func anyContains(values []string, sub string) bool {
	sub = strings.ToLower(sub)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), sub) {
			return true
		}
	}
	return false
}

// MockClipboard records what was copied
type MockClipboard struct {
	mu     sync.Mutex
	Err    error
	copied []string
}

// WriteAll records text
func (c *MockClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	c.copied = append(c.copied, text)
	return nil
}

// Last returns the most recent copy
func (c *MockClipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.copied) == 0 {
		return ""
	}
	return c.copied[len(c.copied)-1]
}

// MockOpener records opened targets
type MockOpener struct {
	mu     sync.Mutex
	Opened []string
}

// Open records target
func (o *MockOpener) Open(ctx context.Context, target string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.Opened = append(o.Opened, target)
	return nil
}
