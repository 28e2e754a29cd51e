/*
Package ui - Roster Preview TUI Rendering

==============================================================================
FILE: cmd/roster-tui/ui/model.go
==============================================================================

DESCRIPTION:
    bubbletea model rendering a services.RosterGrid as a scrollable
    employee x day table, using bubbles/table for the grid and
    lipgloss for styling.

==============================================================================
*/
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dienstplan/internal/services"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("25"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)
)

// Model is the roster-tui's bubbletea program state.
type Model struct {
	grid  *services.RosterGrid
	table table.Model
}

// NewModel builds the table columns/rows from a roster grid and returns
// a ready-to-run Model.
func NewModel(grid *services.RosterGrid) Model {
	columns := []table.Column{
		{Title: "Personalnr.", Width: 11},
		{Title: "Name", Width: 22},
		{Title: "Qual.", Width: 6},
	}
	for _, day := range grid.Days {
		columns = append(columns, table.Column{Title: fmt.Sprintf("%d", day), Width: 3})
	}

	rows := make([]table.Row, 0, len(grid.Rows))
	for _, r := range grid.Rows {
		row := table.Row{r.EmployeeNumber, r.FullName, r.Qualification}
		for _, day := range grid.Days {
			row = append(row, r.Days[day])
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 30)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Inherit(headerStyle)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{grid: grid, table: t}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Dienstplan %02d/%d", m.grid.Month, m.grid.Year))
	footer := footerStyle.Render(fmt.Sprintf("%d Mitarbeiter  ·  ↑/↓ scroll  ·  q beenden", len(m.grid.Rows)))
	return title + "\n" + m.table.View() + "\n" + footer
}
