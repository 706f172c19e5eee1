package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pacdfa/internal/registry"
	"github.com/vovakirdan/pacdfa/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
	activePackStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// ScoreboardKeyMap holds the scoreboard bindings. Row scrolling is left to
// the table's own keymap.
type ScoreboardKeyMap struct {
	NextPack key.Binding
	PrevPack key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPack, k.PrevPack, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		NextPack: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next pack")),
		PrevPack: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev pack")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows per-level clears and deaths for each pack.
type ScoreboardModel struct {
	packs       []string
	cursor      int
	store       *storage.Store
	stats       []storage.LevelStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showSidebar bool
	quitting    bool
}

// NewScoreboardModel creates a scoreboard over registered packs and any pack
// that has history in the store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		packs:       scoreboardPacks(store),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = newStatsTable(height)
	if len(m.packs) > 0 {
		m.loadStats()
	}
	return m
}

func scoreboardPacks(store *storage.Store) []string {
	seen := make(map[string]bool)
	var packs []string
	for _, p := range registry.List() {
		seen[p.Name] = true
		packs = append(packs, p.Name)
	}
	if store != nil {
		if recorded, err := store.Packs(); err == nil {
			for _, p := range recorded {
				if !seen[p] {
					seen[p] = true
					packs = append(packs, p)
				}
			}
		}
	}
	sort.Strings(packs)
	return packs
}

func newStatsTable(height int) table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Level", Width: 18},
			{Title: "Clears", Width: 7},
			{Title: "Deaths", Width: 7},
			{Title: "Best", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-8)),
		table.WithStyles(styles),
	)
}

func (m *ScoreboardModel) loadStats() {
	m.stats, m.loadErr = nil, nil
	if m.store != nil {
		m.stats, m.loadErr = m.store.LevelStats(m.packs[m.cursor])
	}
	m.table.SetRows(statsRows(m.stats))
	m.table.GotoTop()
}

// statsRows formats level stats as table rows.
func statsRows(stats []storage.LevelStats) []table.Row {
	rows := make([]table.Row, len(stats))
	for i, st := range stats {
		best := "-"
		if st.Clears > 0 {
			best = fmt.Sprintf("%d", st.BestMoves)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", st.Level+1),
			st.LevelName,
			fmt.Sprintf("%d", st.Clears),
			fmt.Sprintf("%d", st.Deaths),
			best,
		}
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPack):
			m.switchPack(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevPack):
			m.switchPack(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = newStatsTable(m.height)
		m.table.SetRows(statsRows(m.stats))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchPack(delta int) {
	if len(m.packs) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.packs)) % len(m.packs)
	m.loadStats()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "RUN HISTORY"
	if len(m.packs) > 0 {
		title += " - " + m.packs[m.cursor]
	}

	body := panelStyle.Render(m.statsPanel())
	switch {
	case m.showSidebar:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.packSidebar(), "  ", body)
	case len(m.packs) > 0:
		body = centerText("< "+m.packs[m.cursor]+" >", m.width) + "\n\n" + body
	}

	return boardTitleStyle.Render(centerText(title, m.width)) + "\n\n" +
		body + "\n" +
		boardHelpStyle.Render(m.help.View(m.keys))
}

func (m ScoreboardModel) packSidebar() string {
	lines := []string{"Packs", strings.Repeat("-", sidebarWidth-4)}
	for i, p := range m.packs {
		name := truncate(p, sidebarWidth-6)
		if i == m.cursor {
			lines = append(lines, activePackStyle.Render("> "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	return panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) statsPanel() string {
	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.stats) == 0:
		return emptyStyle.Render("No runs recorded yet.\nClear a level to get on the board!")
	}
	return m.table.View()
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
