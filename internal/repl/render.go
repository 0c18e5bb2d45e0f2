package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// theme groups the lipgloss styles used by command output.
type theme struct {
	ok     lipgloss.Style
	warn   lipgloss.Style
	title  lipgloss.Style
	dim    lipgloss.Style
	accent lipgloss.Style
}

func newTheme(accentColor string) theme {
	accent := lipgloss.Color(accentColor)

	return theme{
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		title:  lipgloss.NewStyle().Bold(true),
		dim:    lipgloss.NewStyle().Faint(true),
		accent: lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}

// okf renders a confirmation line: a green check plus the message.
func (s *Session) okf(format string, args ...any) string {
	return s.theme.ok.Render("✓") + " " + fmt.Sprintf(format, args...)
}

// weight formats a float with the configured precision.
func (s *Session) weight(w float64) string {
	return strconv.FormatFloat(w, 'f', s.cfg.Precision, 64)
}

// newTable builds a rounded-border table with the given headers.
func (s *Session) newTable(headers ...string) *table.Table {
	headerStyle := s.theme.accent
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}

			return cellStyle
		}).
		Headers(headers...)
}

// pathArrows joins a vertex sequence as "0 → 2 → 1".
func pathArrows(vertices []int) string {
	parts := make([]string, len(vertices))
	for i, v := range vertices {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}

// intList joins IDs as "0, 1, 2".
func intList(ids []int) string {
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
