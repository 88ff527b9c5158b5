package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "mpt/internal/modules/catalog/dto"
	"mpt/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListSections(ctx context.Context) ([]catalogdto.SectionOutput, error)
	GetSection(ctx context.Context, ordinal int) (catalogdto.SectionDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SectionsLoadedMsg struct {
	Sections []catalogdto.SectionOutput
	Err      error
}

type SectionLoadedMsg struct {
	Detail catalogdto.SectionDetailOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type sectionItem struct {
	section catalogdto.SectionOutput
}

func (i sectionItem) Title() string { return i.section.Title }
func (i sectionItem) Description() string {
	return fmt.Sprintf("%s  %d exercises", i.section.Date, i.section.ExerciseCount)
}
func (i sectionItem) FilterValue() string { return i.section.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    CatalogPort
	list    list.Model
	detail  catalogdto.SectionDetailOutput
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tutorial Problems"
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
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSectionsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SectionsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Tutorial Problems — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sections))
		for i, s := range msg.Sections {
			items[i] = sectionItem{section: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Sections) > 0 {
			cmds = append(cmds, m.loadSectionCmd(msg.Sections[0].Ordinal))
		}

	case SectionLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
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
			if item, ok := m.list.SelectedItem().(sectionItem); ok {
				cmds = append(cmds, m.loadSectionCmd(item.section.Ordinal))
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
			m.spinner.View()+" Loading catalog…")
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
// The app model checks this to avoid consuming global keys during a search.
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

func (m Model) renderDetail() string {
	d := m.detail
	if d.Title == "" {
		return theme.Muted.Render("Select a section to see its exercises")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Title) + "\n")
	sb.WriteString(theme.Muted.Render(d.Date) + "\n\n")
	for _, ex := range d.Exercises {
		sb.WriteString(ex.Title + "\n")
		sb.WriteString(theme.Muted.Render("  file:   ") + ex.File + "\n")
		if len(ex.Assets) > 0 {
			sb.WriteString(theme.Muted.Render("  assets: ") + strings.Join(ex.Assets, ", ") + "\n")
		}
	}
	return sb.String()
}

func (m Model) loadSectionsCmd() tea.Cmd {
	return func() tea.Msg {
		sections, err := m.port.ListSections(context.Background())
		return SectionsLoadedMsg{Sections: sections, Err: err}
	}
}

func (m Model) loadSectionCmd(ordinal int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.GetSection(context.Background(), ordinal)
		return SectionLoadedMsg{Detail: detail, Err: err}
	}
}
