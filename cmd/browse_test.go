package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/ports/mocks"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
)

const testBase = "https://cms.example.com"

type browseFixture struct {
	cms       *mocks.MockCMS
	clipboard *mocks.MockClipboard
	opener    *mocks.MockOpener
	dir       string
}

// createTestModel loads three assets through the mock CMS
func createTestModel(t *testing.T, filter domain.Filter) (browseModel, *browseFixture) {
	t.Helper()

	f := &browseFixture{
		cms:       mocks.NewMockCMS("tok"),
		clipboard: &mocks.MockClipboard{},
		opener:    &mocks.MockOpener{},
		dir:       t.TempDir(),
	}
	f.cms.AddItem(domain.Item{
		AssetImage:     "img-1",
		AssetMessage:   "Hello\r\nWorld",
		TransitionType: domain.StringList{"Upsell", "Renewal"},
		ProgramName:    domain.StringList{"Gold"},
	})
	f.cms.AddItem(domain.Item{
		AssetImage:     "img-2",
		AssetMessage:   "Second <b>story</b>",
		TransitionType: domain.StringList{"Renewal"},
		ProgramName:    domain.StringList{"Silver"},
	})
	f.cms.AddItem(domain.Item{
		AssetImage:     "img-3",
		AssetMessage:   "Third",
		TransitionType: domain.StringList{"Winback"},
		ProgramName:    domain.StringList{"Gold", "Bronze"},
	})

	gallery := services.NewGalleryService(f.cms, f.cms, testBase)
	resp, err := gallery.Load(context.Background(), services.LoadRequest{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	m := newBrowseModel(context.Background(), resp, filter, browseDeps{
		gallery:     gallery,
		downloads:   services.NewDownloadService(f.cms),
		clipboard:   f.clipboard,
		opener:      f.opener,
		downloadDir: f.dir,
	})
	return m, f
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(browseModel), cmd
}

func visibleNames(m browseModel) []string {
	names := make([]string, len(m.visible))
	for i, a := range m.visible {
		names[i] = a.ImageName
	}
	return names
}

func TestBrowseModelInitialization(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	if len(m.assets) != 3 || len(m.visible) != 3 {
		t.Errorf("expected 3 assets visible, got %d/%d", len(m.visible), len(m.assets))
	}
	if m.cursor != 0 || m.offset != 0 {
		t.Errorf("expected cursor and offset at 0, got %d/%d", m.cursor, m.offset)
	}
	if m.mode != modeList {
		t.Errorf("expected modeList, got %v", m.mode)
	}
	if m.ready {
		t.Error("expected ready to be false before the first window size")
	}
	if strings.Join(m.programs, ",") != "Gold,Silver,Bronze" {
		t.Errorf("unexpected programs %v", m.programs)
	}
}

func TestBrowseInitialFilter(t *testing.T) {
	m, _ := createTestModel(t, domain.Filter{Program: "Gold", Tag: "Winback"})

	if got := strings.Join(visibleNames(m), ","); got != "img-3" {
		t.Errorf("expected only img-3, got %s", got)
	}
}

func TestBrowseNavigation(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", m.cursor)
	}

	m, _ = press(t, m, keyRunes("j"))
	m, _ = press(t, m, keyRunes("j"))
	if m.cursor != 2 {
		t.Errorf("cursor should stop at the last row, got %d", m.cursor)
	}

	m, _ = press(t, m, keyRunes("g"))
	if m.cursor != 0 {
		t.Errorf("expected cursor at top, got %d", m.cursor)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0, got %d", m.cursor)
	}

	m, _ = press(t, m, keyRunes("G"))
	if m.cursor != 2 {
		t.Errorf("expected cursor at bottom, got %d", m.cursor)
	}
}

func TestBrowseProgramCycleResetsTag(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	m, _ = press(t, m, keyRunes("t"))
	if m.filter.Tag != "Upsell" {
		t.Fatalf("expected first tag Upsell, got %q", m.filter.Tag)
	}

	m, _ = press(t, m, keyRunes("p"))
	if m.filter.Program != "Gold" {
		t.Errorf("expected program Gold, got %q", m.filter.Program)
	}
	if m.filter.Tag != domain.All {
		t.Errorf("choosing a program should reset the tag, got %q", m.filter.Tag)
	}
	if got := strings.Join(visibleNames(m), ","); got != "img-1,img-3" {
		t.Errorf("unexpected rows for Gold: %s", got)
	}

	m, _ = press(t, m, keyRunes("P"))
	if m.filter.Program != domain.All {
		t.Errorf("previous program from the first should be all, got %q", m.filter.Program)
	}

	m, _ = press(t, m, keyRunes("P"))
	if m.filter.Program != "Bronze" {
		t.Errorf("cycling backwards should wrap to the last program, got %q", m.filter.Program)
	}
}

func TestBrowseTagAndReset(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	m, _ = press(t, m, keyRunes("p")) // Gold
	m, _ = press(t, m, keyRunes("t")) // Upsell
	m, _ = press(t, m, keyRunes("t")) // Renewal

	if m.filter.Tag != "Renewal" {
		t.Fatalf("expected tag Renewal, got %q", m.filter.Tag)
	}
	if got := strings.Join(visibleNames(m), ","); got != "img-1" {
		t.Errorf("unexpected rows for Gold+Renewal: %s", got)
	}

	m, _ = press(t, m, keyRunes("r"))
	if m.filter.Tag != domain.All || m.filter.Program != "Gold" {
		t.Errorf("reset should clear only the tag, got %+v", m.filter)
	}
	if len(m.visible) != 2 {
		t.Errorf("expected 2 Gold rows after reset, got %d", len(m.visible))
	}
}

func TestBrowseEmptyIntersection(t *testing.T) {
	m, _ := createTestModel(t, domain.Filter{Program: "Silver", Tag: "Upsell"})

	if len(m.visible) != 0 {
		t.Fatalf("expected no rows, got %v", visibleNames(m))
	}

	// Actions on an empty list are no-ops
	m, cmd := press(t, m, keyRunes("c"))
	if cmd != nil {
		t.Error("copy with no selection should not run a command")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeList {
		t.Error("view with no selection should stay in the list")
	}
}

func TestBrowseSearch(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	m, _ = press(t, m, keyRunes("/"))
	if m.mode != modeSearch {
		t.Fatalf("expected modeSearch, got %v", m.mode)
	}

	for _, r := range "story" {
		m, _ = press(t, m, keyRunes(string(r)))
	}
	if got := strings.Join(visibleNames(m), ","); got != "img-2" {
		t.Errorf("search should match the plain-text message, got %s", got)
	}

	// j is text while searching
	m, _ = press(t, m, keyRunes("j"))
	if m.searchInput.Value() != "storyj" {
		t.Errorf("expected j to be typed, got %q", m.searchInput.Value())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList || m.searchInput.Value() != "" || len(m.visible) != 3 {
		t.Errorf("esc should clear the search, got mode=%v query=%q rows=%d", m.mode, m.searchInput.Value(), len(m.visible))
	}
}

func TestBrowseCopy(t *testing.T) {
	m, f := createTestModel(t, domain.NewFilter())

	m, cmd := press(t, m, keyRunes("c"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}

	msg := cmd()
	status, ok := msg.(statusMsg)
	if !ok {
		t.Fatalf("expected statusMsg, got %T", msg)
	}
	if !strings.Contains(status.message, "Copied") || status.ttl != copiedTTL {
		t.Errorf("unexpected status %+v", status)
	}
	if got := f.clipboard.Last(); got != "Hello\nWorld" {
		t.Errorf("expected the plain-text message on the clipboard, got %q", got)
	}

	m, tick := press(t, m, status)
	if m.message == "" || tick == nil {
		t.Fatal("status should show and schedule its own removal")
	}

	m, _ = press(t, m, clearMessageMsg{id: m.messageID})
	if m.message != "" {
		t.Errorf("status should clear after its ttl, got %q", m.message)
	}
}

func TestBrowseStaleClearKeepsNewerMessage(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	m, _ = press(t, m, statusMsg{message: "first", ttl: copiedTTL})
	stale := m.messageID
	m, _ = press(t, m, statusMsg{message: "second", ttl: copiedTTL})

	m, _ = press(t, m, clearMessageMsg{id: stale})
	if m.message != "second" {
		t.Errorf("an older clear must not remove a newer message, got %q", m.message)
	}
}

func TestBrowseCopyFailure(t *testing.T) {
	m, f := createTestModel(t, domain.NewFilter())
	f.clipboard.Err = errors.New("no clipboard")

	_, cmd := press(t, m, keyRunes("c"))
	status := cmd().(statusMsg)

	if !strings.Contains(status.message, "no clipboard") {
		t.Errorf("expected the failure in the status, got %q", status.message)
	}
}

func TestBrowseDownload(t *testing.T) {
	m, f := createTestModel(t, domain.NewFilter())
	f.cms.AddFile(testBase+"/assets/img-1?download=true", "PNGDATA")

	_, cmd := press(t, m, keyRunes("d"))
	status := cmd().(statusMsg)
	if !strings.Contains(status.message, "Saved") {
		t.Fatalf("expected a saved status, got %q", status.message)
	}

	data, err := os.ReadFile(filepath.Join(f.dir, "img-1"))
	if err != nil {
		t.Fatalf("file not downloaded: %v", err)
	}
	if string(data) != "PNGDATA" {
		t.Errorf("unexpected file content %q", data)
	}

	// A second download does not overwrite
	_, cmd = press(t, m, keyRunes("d"))
	status = cmd().(statusMsg)
	if !strings.Contains(status.message, "Already downloaded") {
		t.Errorf("expected an already-downloaded warning, got %q", status.message)
	}
}

func TestBrowseLightbox(t *testing.T) {
	m, f := createTestModel(t, domain.NewFilter())
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = press(t, m, keyRunes("v"))
	if m.mode != modeLightbox {
		t.Fatalf("expected modeLightbox, got %v", m.mode)
	}

	view := m.View()
	if !strings.Contains(view, "img-1") || !strings.Contains(view, testBase+"/assets/img-1") {
		t.Error("lightbox should show the asset name and URL")
	}

	_, cmd := press(t, m, keyRunes("o"))
	if cmd == nil {
		t.Fatal("expected an open command")
	}
	cmd()
	if len(f.opener.Opened) != 1 || f.opener.Opened[0] != testBase+"/assets/img-1" {
		t.Errorf("expected the image URL to be opened, got %v", f.opener.Opened)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Errorf("esc should close the lightbox, got %v", m.mode)
	}
}

func TestBrowseHelpMode(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = press(t, m, keyRunes("?"))
	if m.mode != modeHelp {
		t.Fatalf("expected modeHelp, got %v", m.mode)
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Errorf("expected modeList, got %v", m.mode)
	}
}

func TestBrowseQuit(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	_, cmd := press(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBrowseListView(t *testing.T) {
	m, _ := createTestModel(t, domain.NewFilter())

	if !strings.Contains(m.View(), "Loading") {
		t.Error("expected loading text before the first window size")
	}

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, want := range []string{"Gallery", "3 of 3 assets", "All Programs", "All Tags", "img-1", "Upsell, Renewal"} {
		if !strings.Contains(view, want) {
			t.Errorf("list view missing %q", want)
		}
	}
}

func TestCycle(t *testing.T) {
	options := []string{"a", "b"}

	tests := []struct {
		current string
		step    int
		want    string
	}{
		{domain.All, 1, "a"},
		{"a", 1, "b"},
		{"b", 1, domain.All},
		{domain.All, -1, "b"},
		{"a", -1, domain.All},
		{"unknown", 1, "a"},
	}

	for _, tt := range tests {
		if got := cycle(options, tt.current, tt.step); got != tt.want {
			t.Errorf("cycle(%q, %d) = %q, want %q", tt.current, tt.step, got, tt.want)
		}
	}

	if got := cycle(nil, domain.All, 1); got != domain.All {
		t.Errorf("cycling no options should stay on all, got %q", got)
	}
}
