package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	deploydto "mpt/internal/modules/deploy/dto"
	"mpt/internal/ui/theme"
	catalogview "mpt/internal/ui/views/catalog"
	rosterview "mpt/internal/ui/views/roster"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type deployPort interface {
	Run(ctx context.Context, input deploydto.RunInput) (deploydto.RunOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabCatalog tabID = iota
	tabStudents
	tabCount
)

var tabLabels = [tabCount]string{"Catalog", "Students"}

// ─── async messages ──────────────────────────────────────────────────────────

type deployDoneMsg struct {
	out deploydto.RunOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Help   key.Binding
	Deploy key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Deploy: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "push to server")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Deploy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Deploy},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the deploy shortcut. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	deploy deployPort

	catalogView catalogview.Model
	rosterView  rosterview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	deploying bool
	status    string
	width     int
	height    int
}

func NewModel(catalog catalogview.CatalogPort, roster rosterview.RosterPort, status rosterview.StatusPort, deploy deployPort) Model {
	return Model{
		deploy:      deploy,
		catalogView: catalogview.New(catalog),
		rosterView:  rosterview.New(roster, status),
		activeTab:   tabCatalog,
		keys:        defaultKeys(),
		help:        help.New(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.catalogView.Init(), m.rosterView.Init())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case deployDoneMsg:
		m.deploying = false
		if msg.err != nil {
			m.status = "deploy failed: " + msg.err.Error()
		} else {
			m.status = "deployed " + msg.out.Pattern + " to " + msg.out.Host
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case "P":
			if !m.deploying && m.deploy != nil {
				m.deploying = true
				m.status = "deploying…"
				cmds = append(cmds, m.deployCmd())
			}
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabCatalog:
		m.catalogView, tabCmd = m.catalogView.Update(msg)
	case tabStudents:
		m.rosterView, tabCmd = m.rosterView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCatalog:
		return m.catalogView.View()
	case tabStudents:
		return m.rosterView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "mpt  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  P:deploy  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	contentH := m.height - 3
	if contentH < 1 {
		contentH = 1
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: contentH}
	m.catalogView, _ = m.catalogView.Update(size)
	m.rosterView, _ = m.rosterView.Update(size)
}

func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabCatalog:
		return m.catalogView.Filtering()
	case tabStudents:
		return m.rosterView.Filtering()
	}
	return false
}

func (m Model) deployCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.deploy.Run(context.Background(), deploydto.RunInput{})
		return deployDoneMsg{out: out, err: err}
	}
}
