package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/ports"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	browseProgram string
	browseTag     string
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b"},
	Short:   "Browse assets in an interactive terminal viewer (alias: b)",
	Long: `Launch a full-screen viewer over the published assets.

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Filters:
    p / P       Next / previous program (resets the tag)
    t / T       Next / previous tag
    r           Reset the tag filter
    /           Search name, message and tags

  Actions:
    Enter / v   View asset
    c           Copy message
    d           Download image
    o           Open image (from the asset view)

  General:
    ?           Show help
    q           Quit`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseProgram, "program", domain.All, "Initial program filter")
	browseCmd.Flags().StringVar(&browseTag, "tag", domain.All, "Initial tag filter")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := loadGallery(ctx)
	if err != nil {
		return fmt.Errorf("failed to load gallery: %w", err)
	}

	m := newBrowseModel(ctx, resp, resolveFilter(cmd, browseProgram, browseTag), browseDeps{
		gallery:     galleryService,
		downloads:   downloadService,
		clipboard:   appClipboard,
		opener:      appOpener,
		downloadDir: appDirs.DownloadDir(appConfig.DownloadDir),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}

// Viewer modes
type viewMode int

const (
	modeList viewMode = iota
	modeSearch
	modeLightbox
	modeHelp
)

const (
	copiedTTL = 2 * time.Second
	statusTTL = 3 * time.Second
)

// browseDeps are the collaborators the viewer calls into
type browseDeps struct {
	gallery     *services.GalleryService
	downloads   *services.DownloadService
	clipboard   ports.Clipboard
	opener      ports.FileOpener
	downloadDir string
}

type browseModel struct {
	ctx  context.Context
	deps browseDeps

	assets   []domain.Asset // Everything loaded
	programs []string
	tags     []string
	filter   domain.Filter
	visible  []domain.Asset // After filters and search

	cursor int
	offset int
	mode   viewMode

	searchInput textinput.Model
	lightbox    viewport.Model
	help        help.Model
	keys        browseKeyMap

	width  int
	height int
	ready  bool

	message      string
	messageStyle lipgloss.Style
	messageID    int
}

type browseKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextProgram key.Binding
	PrevProgram key.Binding
	NextTag     key.Binding
	PrevTag     key.Binding
	Reset       key.Binding
	Search      key.Binding
	View        key.Binding
	Copy        key.Binding
	Download    key.Binding
	Open        key.Binding
	Help        key.Binding
	Quit        key.Binding
	Escape      key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextProgram, k.NextTag, k.Search, k.View, k.Copy, k.Download, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.NextProgram, k.PrevProgram, k.NextTag, k.PrevTag, k.Reset, k.Search},
		{k.View, k.Copy, k.Download, k.Open},
		{k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
	Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	NextProgram: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next program")),
	PrevProgram: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "previous program")),
	NextTag:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next tag")),
	PrevTag:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "previous tag")),
	Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset tag")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	View:        key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter/v", "view")),
	Copy:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy message")),
	Download:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
	Open:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open image")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

func newBrowseModel(ctx context.Context, resp *services.LoadResponse, filter domain.Filter, deps browseDeps) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search assets..."
	ti.CharLimit = 100
	ti.Width = 50

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().Foreground(ui.ColorDefault)

	m := browseModel{
		ctx:         ctx,
		deps:        deps,
		assets:      resp.Assets,
		programs:    resp.Programs,
		tags:        resp.Tags,
		filter:      filter.Normalize(),
		mode:        modeList,
		searchInput: ti,
		lightbox:    vp,
		help:        help.New(),
		keys:        browseKeys,
	}
	m.refresh()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

// Messages

type statusMsg struct {
	message string
	style   lipgloss.Style
	ttl     time.Duration
}

type clearMessageMsg struct {
	id int
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		m.lightbox.Width = max(msg.Width-8, 20)
		m.lightbox.Height = max(msg.Height-10, 5)
		m.adjustViewport()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeLightbox:
			return m.updateLightbox(msg)
		case modeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateList(msg)
		}

	case statusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageID++
		id := m.messageID
		return m, tea.Tick(msg.ttl, func(time.Time) tea.Msg {
			return clearMessageMsg{id: id}
		})

	case clearMessageMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.visible)-1, 0)
		m.adjustViewport()

	case key.Matches(msg, m.keys.NextProgram):
		m.selectProgram(cycle(m.programs, m.filter.Program, 1))

	case key.Matches(msg, m.keys.PrevProgram):
		m.selectProgram(cycle(m.programs, m.filter.Program, -1))

	case key.Matches(msg, m.keys.NextTag):
		m.selectTag(cycle(m.tags, m.filter.Tag, 1))

	case key.Matches(msg, m.keys.PrevTag):
		m.selectTag(cycle(m.tags, m.filter.Tag, -1))

	case key.Matches(msg, m.keys.Reset):
		m.filter = m.filter.Reset()
		m.refresh()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.View):
		if a, ok := m.selected(); ok {
			m.openLightbox(a)
		}

	case key.Matches(msg, m.keys.Copy):
		if a, ok := m.selected(); ok {
			return m, m.copyMessage(a)
		}

	case key.Matches(msg, m.keys.Download):
		if a, ok := m.selected(); ok {
			return m, m.download(a)
		}

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.cursor = 0
		m.offset = 0
		m.refresh()
		return m, nil

	// Enter keeps the query and returns to the list
	case msg.Type == tea.KeyEnter:
		m.mode = modeList
		m.searchInput.Blur()
		return m, nil

	// Only arrow keys navigate while typing, not j/k
	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.adjustViewport()
		}

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.refresh()
		return m, cmd
	}

	return m, nil
}

func (m browseModel) updateLightbox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a, ok := m.selected()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.View):
		m.mode = modeList

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Open):
		return m, m.openImage(a)

	case key.Matches(msg, m.keys.Download):
		return m, m.download(a)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyMessage(a)

	default:
		var cmd tea.Cmd
		m.lightbox, cmd = m.lightbox.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = modeList
	}
	return m, nil
}

// State helpers

// refresh recomputes the visible rows from the filter and the search query
func (m *browseModel) refresh() {
	visible := m.deps.gallery.Filter(m.assets, m.filter)
	visible = m.deps.gallery.Search(visible, m.searchInput.Value())
	m.visible = visible

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

// selectProgram switches the program and resets the tag, like the web viewer
func (m *browseModel) selectProgram(program string) {
	m.filter = m.filter.WithProgram(program)
	m.cursor = 0
	m.offset = 0
	m.refresh()
}

func (m *browseModel) selectTag(tag string) {
	m.filter = m.filter.WithTag(tag)
	m.cursor = 0
	m.offset = 0
	m.refresh()
}

func (m browseModel) selected() (domain.Asset, bool) {
	if len(m.visible) == 0 {
		return domain.Asset{}, false
	}
	return m.visible[m.cursor], true
}

func (m *browseModel) openLightbox(a domain.Asset) {
	width := max(m.lightbox.Width, 20)
	m.lightbox.SetContent(lipgloss.NewStyle().Width(width).Render(plainMessage(a)))
	m.lightbox.GotoTop()
	m.mode = modeLightbox
}

func (m browseModel) listHeight() int {
	return max(m.height-10, 3)
}

func (m *browseModel) adjustViewport() {
	listHeight := m.listHeight()

	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// cycle steps through all followed by options, wrapping at both ends.
// An unknown current value starts from all.
func cycle(options []string, current string, step int) string {
	choices := append([]string{domain.All}, options...)

	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}

	n := len(choices)
	return choices[((idx+step)%n+n)%n]
}

// Commands

func (m browseModel) copyMessage(a domain.Asset) tea.Cmd {
	clip := m.deps.clipboard
	return func() tea.Msg {
		if err := clip.WriteAll(plainMessage(a)); err != nil {
			return statusMsg{message: "Copy failed: " + err.Error(), style: ui.StyleError, ttl: statusTTL}
		}
		return statusMsg{message: ui.IconCopy + " Copied", style: ui.StyleSuccess, ttl: copiedTTL}
	}
}

func (m browseModel) download(a domain.Asset) tea.Cmd {
	ctx, downloads, dir := m.ctx, m.deps.downloads, m.deps.downloadDir
	return func() tea.Msg {
		resp, err := downloads.Execute(ctx, services.DownloadRequest{Asset: a, Dir: dir})
		if errors.Is(err, domain.ErrFileExists) {
			return statusMsg{message: "Already downloaded: " + a.FileName(), style: ui.StyleWarning, ttl: statusTTL}
		}
		if err != nil {
			return statusMsg{message: "Download failed: " + err.Error(), style: ui.StyleError, ttl: statusTTL}
		}
		return statusMsg{message: ui.IconDownload + " Saved " + shortenHome(resp.Path), style: ui.StyleSuccess, ttl: statusTTL}
	}
}

func (m browseModel) openImage(a domain.Asset) tea.Cmd {
	ctx, opener := m.ctx, m.deps.opener
	return func() tea.Msg {
		if err := opener.Open(ctx, a.ImageURL); err != nil {
			return statusMsg{message: "Open failed: " + err.Error(), style: ui.StyleError, ttl: statusTTL}
		}
		return statusMsg{message: "Opened " + a.ImageName, style: ui.StyleSuccess, ttl: statusTTL}
	}
}

// Views

func (m browseModel) View() string {
	if !m.ready {
		return "\n  Loading gallery..."
	}

	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modeLightbox:
		return m.viewLightbox()
	default:
		return m.viewList()
	}
}

func (m browseModel) viewList() string {
	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderFilters())
	s.WriteString("\n")
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")

	listWidth := max(int(float64(m.width)*0.45), 30)
	previewWidth := m.width - listWidth - 2

	list := m.renderList(listWidth)
	if previewWidth < 30 {
		s.WriteString(list)
	} else {
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", m.renderPreview(previewWidth)))
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m browseModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1).
		Render(ui.IconImage + " Gallery")

	stats := ui.StyleMuted.Render(fmt.Sprintf("%d of %d assets", len(m.visible), len(m.assets)))

	spacer := max(m.width-lipgloss.Width(title)-lipgloss.Width(stats), 0)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", spacer), stats)
}

func (m browseModel) renderFilters() string {
	program := "All Programs"
	if m.filter.Program != domain.All {
		program = m.filter.Program
	}
	tag := "All Tags"
	if m.filter.Tag != domain.All {
		tag = m.filter.Tag
	}

	return fmt.Sprintf(" %s %s   %s %s",
		ui.StyleMuted.Render(ui.IconProgram),
		ui.StyleSelected.Render(program),
		ui.StyleMuted.Render(ui.IconTag),
		ui.StyleSelected.Render(tag),
	)
}

func (m browseModel) renderSearchBar() string {
	borderColor := ui.ColorMuted
	if m.mode == modeSearch {
		borderColor = ui.ColorPrimary
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(m.width-4, 10))

	content := m.searchInput.View()
	if m.mode != modeSearch && m.searchInput.Value() == "" {
		content = ui.StyleMuted.Render("Press / to search...")
	}
	return style.Render(content)
}

func (m browseModel) renderList(width int) string {
	if len(m.visible) == 0 {
		empty := "No assets match the current filters."
		if len(m.assets) == 0 {
			empty = "No published assets."
		}
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(1, 2).
			Width(width).
			Render(empty)
	}

	var s strings.Builder
	end := min(m.offset+m.listHeight(), len(m.visible))
	for i := m.offset; i < end; i++ {
		s.WriteString(m.renderRow(m.visible[i], i == m.cursor, width))
		if i < end-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m browseModel) renderRow(a domain.Asset, selected bool, width int) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorDefault)
	if selected {
		cursor = ui.StylePrimary.Render("▶ ")
		nameStyle = ui.StyleSelected
	}

	nameWidth := max(width/2, 12)
	name := ui.Truncate(a.ImageName, nameWidth)
	tags := ui.Truncate(a.TagLine(), max(width-nameWidth-4, 8))

	line := cursor + nameStyle.Render(name) + strings.Repeat(" ", max(nameWidth-lipgloss.Width(name), 0)) +
		"  " + ui.StyleBadge.Render(tags)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (m browseModel) renderPreview(width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(width - 2).
		Height(m.listHeight())

	a, ok := m.selected()
	if !ok {
		return box.Render(ui.StyleSubtle.Render("No asset selected"))
	}

	inner := width - 4
	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(inner).Render(a.ImageName))
	s.WriteString("\n")
	s.WriteString(ui.RenderKeyValue("Programs", ui.FormatBadges(a.Programs)))
	s.WriteString("\n")
	s.WriteString(ui.RenderKeyValue("Use Case", ui.FormatBadges(a.Tags)))
	s.WriteString("\n\n")

	lines := strings.Split(lipgloss.NewStyle().Width(inner).Render(plainMessage(a)), "\n")
	if limit := m.listHeight() - 5; limit > 0 && len(lines) > limit {
		lines = append(lines[:limit], ui.StyleMuted.Render("… (enter to view all)"))
	}
	s.WriteString(strings.Join(lines, "\n"))

	return box.Render(s.String())
}

func (m browseModel) renderFooter() string {
	status := ui.StyleMuted.Render("Ready")
	if m.message != "" {
		status = m.messageStyle.Render(m.message)
	}

	style := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys)))
}

func (m browseModel) viewLightbox() string {
	a, ok := m.selected()
	if !ok {
		return ""
	}

	title := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render(ui.IconImage + " " + a.ImageName)

	var body strings.Builder
	body.WriteString(title)
	body.WriteString("\n")
	body.WriteString(ui.RenderKeyValue("URL", a.ImageURL))
	body.WriteString("\n")
	body.WriteString(ui.RenderKeyValue("Programs", ui.FormatBadges(a.Programs)))
	body.WriteString("\n")
	body.WriteString(ui.RenderKeyValue("Use Case", ui.FormatBadges(a.Tags)))
	body.WriteString("\n\n")
	body.WriteString(m.lightbox.View())
	body.WriteString("\n\n")

	status := ui.StyleMuted.Render("[o] Open image  [d] Download  [c] Copy message  [esc] Close")
	if m.message != "" {
		status = m.messageStyle.Render(m.message)
	}
	body.WriteString(status)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(max(m.width-4, 30)).
		Render(body.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m browseModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorAccent).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ui.ColorSuccess).
		Bold(true).
		Width(12)

	s.WriteString(titleStyle.Render("Gallery - Keyboard Shortcuts"))
	s.WriteString("\n")

	sections := []struct {
		title string
		keys  []key.Binding
	}{
		{"Navigation", []key.Binding{m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom}},
		{"Filters", []key.Binding{m.keys.NextProgram, m.keys.PrevProgram, m.keys.NextTag, m.keys.PrevTag, m.keys.Reset, m.keys.Search}},
		{"Actions", []key.Binding{m.keys.View, m.keys.Copy, m.keys.Download, m.keys.Open}},
		{"General", []key.Binding{m.keys.Help, m.keys.Escape, m.keys.Quit}},
	}

	for _, section := range sections {
		s.WriteString(sectionStyle.Render(section.title))
		s.WriteString("\n")
		for _, b := range section.keys {
			s.WriteString("  ")
			s.WriteString(keyStyle.Render(b.Help().Key))
			s.WriteString(b.Help().Desc)
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render("  Press ESC or ? to return"))
	s.WriteString("\n")
	return s.String()
}
