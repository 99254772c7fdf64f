package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/showcase/pkg/pipeline"
	"github.com/matzehuels/showcase/pkg/project"
)

// Browser styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	detailStyle      = lipgloss.NewStyle().Foreground(colorWhite).Width(80)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BrowseModel - Tabbed project browser
// =============================================================================

// BrowseModel is the bubbletea model behind `showcase browse`. Each tab
// starts with one page of projects; "load more" reveals the next page.
type BrowseModel struct {
	Result  *pipeline.Result
	Tabs    []project.Category
	Tab     int
	Cursor  int
	PerPage int

	// shown is the number of revealed projects per tab.
	shown map[project.Category]int
	now   time.Time
}

// NewBrowseModel creates a browser over result's tabs, opening at
// defaultTab if it is one of them.
func NewBrowseModel(result *pipeline.Result, tabs []project.Category, defaultTab project.Category, perPage int) BrowseModel {
	if perPage < 1 {
		perPage = 1
	}
	m := BrowseModel{
		Result:  result,
		Tabs:    tabs,
		PerPage: perPage,
		shown:   make(map[project.Category]int, len(tabs)),
		now:     time.Now(),
	}
	for i, t := range tabs {
		m.shown[t] = perPage
		if t == defaultTab {
			m.Tab = i
		}
	}
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "tab":
		m.Tab = (m.Tab + 1) % len(m.Tabs)
		m.Cursor = 0
	case "left", "h", "shift+tab":
		m.Tab = (m.Tab + len(m.Tabs) - 1) % len(m.Tabs)
		m.Cursor = 0
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.page())-1 {
			m.Cursor++
		}
	case "m", " ":
		if m.hasMore() {
			m.shown = cloneCounts(m.shown)
			m.shown[m.current()] += m.PerPage
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ tabs  ↑/↓ navigate  m load more  q quit"))
	b.WriteString("\n\n")

	if m.Result.Degraded {
		b.WriteString(StyleWarning.Render(iconWarning + " " + m.Result.Warning))
		b.WriteString("\n\n")
	}

	page := m.page()
	if len(page) == 0 {
		b.WriteString(listDimStyle.Render("  no projects"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(projectTable(page, m.Cursor, m.now).Render())
	b.WriteString("\n")

	total := len(m.Result.Buckets.Get(m.current()))
	status := fmt.Sprintf("  [%d/%d] showing %d of %d", m.Cursor+1, len(page), len(page), total)
	if m.hasMore() {
		status += "  press m to load more"
	}
	b.WriteString(listDimStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(m.detail(page[m.Cursor]))
	return b.String()
}

func (m BrowseModel) current() project.Category {
	return m.Tabs[m.Tab]
}

// page returns the revealed projects of the current tab.
func (m BrowseModel) page() []project.Project {
	p, _ := project.Page(m.Result.Buckets.Get(m.current()), 0, m.shown[m.current()])
	return p
}

func (m BrowseModel) hasMore() bool {
	_, more := project.Page(m.Result.Buckets.Get(m.current()), 0, m.shown[m.current()])
	return more
}

func (m BrowseModel) tabBar() string {
	parts := make([]string, len(m.Tabs))
	for i, t := range m.Tabs {
		label := fmt.Sprintf("%s (%d)", categoryTitle(t), len(m.Result.Buckets.Get(t)))
		if i == m.Tab {
			parts[i] = tabActiveStyle.Render(label)
		} else {
			parts[i] = tabInactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, "   ")
}

func (m BrowseModel) detail(p project.Project) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(p.Title()))
	if p.Language != "" {
		b.WriteString(" " + listDimStyle.Render(p.Language))
	}
	b.WriteString("\n")
	b.WriteString(detailStyle.Render(p.Readme))
	b.WriteString("\n")
	if created := project.FormatDate(p.CreatedAt); created != "" {
		b.WriteString(StyleDim.Render("added ") + fmt.Sprintf("%s (%d days ago)", created, p.AgeDays(m.now)) + "\n")
	}
	if p.LiveURL != "" && p.LiveURL != "#" {
		b.WriteString(StyleDim.Render("live  ") + StyleLink.Render(p.LiveURL) + "\n")
	}
	if p.Link() != "" {
		b.WriteString(StyleDim.Render("code  ") + StyleLink.Render(p.Link()) + "\n")
	}
	if p.Image != "" {
		b.WriteString(StyleDim.Render("image ") + p.Image + "\n")
	}
	return b.String()
}

// cloneCounts copies the per-tab counts so models stay value types.
func cloneCounts(in map[project.Category]int) map[project.Category]int {
	out := make(map[project.Category]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
