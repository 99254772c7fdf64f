package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/showcase/pkg/project"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings, highlights
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleHighlight = lipgloss.NewStyle().Foreground(colorYellow)
	styleNew       = lipgloss.NewStyle().Foreground(colorGreen)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess   = "✓"
	iconError     = "✗"
	iconWarning   = "!"
	iconInfo      = "›"
	iconHighlight = "★"
	iconNew       = "new"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Projects
// =============================================================================

// printProjects prints one bucket as a table under a heading.
func printProjects(w io.Writer, c project.Category, projects []project.Project, now time.Time) {
	fmt.Fprintln(w, StyleTitle.Render(categoryTitle(c))+" "+StyleDim.Render(fmt.Sprintf("(%d)", len(projects))))
	if len(projects) == 0 {
		printDetail(w, "no projects")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintln(w, projectTable(projects, -1, now).Render())
	fmt.Fprintln(w)
}

// projectTable renders projects as rows; the row at cursor (if any) is
// emphasized.
func projectTable(projects []project.Project, cursor int, now time.Time) *table.Table {
	rows := make([][]string, len(projects))
	for i, p := range projects {
		rows[i] = []string{
			marker(p, now),
			p.Title(),
			truncateText(strings.Join(p.Tags, ", "), 30),
			strconv.Itoa(p.Stars),
			project.FormatDate(p.CreatedAt),
			p.Link(),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Project", "Tags", "Stars", "Created", "Link").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				if projects[row].Highlighted {
					base = base.Inherit(styleHighlight)
				} else {
					base = base.Inherit(styleNew)
				}
			case 3:
				base = base.Inherit(StyleNumber)
			case 5:
				base = base.Foreground(colorBlue)
			default:
				base = base.Foreground(colorGray)
			}
			if row == cursor {
				base = base.Bold(true)
				if col == 1 {
					base = base.Foreground(colorCyan)
				}
			}
			return base
		})
}

// printStats prints bucket totals on a single line.
func printStats(w io.Writer, s project.Stats) {
	parts := []string{
		fmt.Sprintf("%d projects", s.Total),
		fmt.Sprintf("%d stars", s.TotalStars),
	}
	if len(s.Languages) > 0 {
		parts = append(parts, strings.Join(s.Languages, ", "))
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

func marker(p project.Project, now time.Time) string {
	switch {
	case p.Highlighted:
		return iconHighlight
	case p.IsNew(now):
		return iconNew
	default:
		return ""
	}
}

func categoryTitle(c project.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// truncateText cuts s to n runes, marking the cut with "…".
func truncateText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
