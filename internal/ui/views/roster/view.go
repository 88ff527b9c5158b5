package roster

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	rosterdto "mpt/internal/modules/roster/dto"
	submissiondto "mpt/internal/modules/submission/dto"
	"mpt/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type RosterPort interface {
	List(ctx context.Context, input rosterdto.ListInput) ([]rosterdto.UserOutput, error)
}

type StatusPort interface {
	Status(ctx context.Context, user string) ([]submissiondto.StatusOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type UsersLoadedMsg struct {
	Users []rosterdto.UserOutput
	Err   error
}

type StatusLoadedMsg struct {
	User     string
	Statuses []submissiondto.StatusOutput
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type userItem struct {
	user rosterdto.UserOutput
}

func (i userItem) Title() string       { return i.user.ID }
func (i userItem) Description() string { return i.user.Name + "  " + i.user.Enrolled }
func (i userItem) FilterValue() string { return i.user.ID + " " + i.user.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	roster   RosterPort
	status   StatusPort
	list     list.Model
	selected string
	statuses []submissiondto.StatusOutput
	preview  viewport.Model
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(roster RosterPort, status StatusPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Students"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		roster:  roster,
		status:  status,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadUsersCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case UsersLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Students — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Users))
		for i, u := range msg.Users {
			items[i] = userItem{user: u}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Users) > 0 {
			cmds = append(cmds, m.loadStatusCmd(msg.Users[0].ID))
		}

	case StatusLoadedMsg:
		if msg.Err == nil {
			m.selected = msg.User
			m.statuses = msg.Statuses
			m.preview.SetContent(m.renderStatus())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(userItem); ok {
				cmds = append(cmds, m.loadStatusCmd(item.user.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading roster…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "OK", "LATE_OK":
		return theme.OK
	case "LATE":
		return theme.Late
	default:
		return theme.Missing
	}
}

func (m Model) renderStatus() string {
	if m.selected == "" {
		return theme.Muted.Render("Select a student to see their submissions")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.selected) + "\n\n")
	if len(m.statuses) == 0 {
		sb.WriteString(theme.Muted.Render("No tutorials in the index"))
		return sb.String()
	}
	for _, s := range m.statuses {
		sb.WriteString(statusStyle(s.Status).Render(padStatus(s.Status)))
		sb.WriteString("  " + s.ProblemSet + "/" + s.Tutorial)
		sb.WriteString(theme.Muted.Render("  due " + s.Due.Format("2006-01-02 15:04")))
		sb.WriteString("\n")
	}
	return sb.String()
}

func padStatus(status string) string {
	for len(status) < len("MISSING") {
		status += " "
	}
	return status
}

func (m Model) loadUsersCmd() tea.Cmd {
	return func() tea.Msg {
		users, err := m.roster.List(context.Background(), rosterdto.ListInput{})
		return UsersLoadedMsg{Users: users, Err: err}
	}
}

func (m Model) loadStatusCmd(user string) tea.Cmd {
	return func() tea.Msg {
		statuses, err := m.status.Status(context.Background(), user)
		return StatusLoadedMsg{User: user, Statuses: statuses, Err: err}
	}
}
