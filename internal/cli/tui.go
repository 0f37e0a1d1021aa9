package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/JustBeyond/packedbubble/pkg/chart"
)

// List styles
var (
	listFilterStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SeriesListModel - Interactive series browsing
// =============================================================================

// SeriesSelection holds the result of the series browser.
type SeriesSelection struct {
	Series chart.Series
}

// SeriesListModel is the bubbletea model for browsing a dataset's series.
// Typing after "/" narrows the list; enter selects the series under the
// cursor. The cursor always addresses the filtered view.
type SeriesListModel struct {
	Dataset  chart.Dataset
	Cursor   int
	Selected *SeriesSelection
	Height   int
	Offset   int

	// Filter narrows the list to series whose name or ID contains the text.
	Filter    string
	Filtering bool

	total float64 // visible dataset total, for share percentages
}

// NewSeriesListModel creates a new series list model.
func NewSeriesListModel(d chart.Dataset) SeriesListModel {
	var total float64
	for _, s := range d.Series {
		if s.Hidden {
			continue
		}
		t, _ := seriesTotal(s)
		total += t
	}
	return SeriesListModel{
		Dataset: d,
		Cursor:  0,
		Height:  15,
		Offset:  0,
		total:   total,
	}
}

func (m SeriesListModel) Init() tea.Cmd {
	return nil
}

func (m SeriesListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering {
			return m.updateFilter(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.Filtering = true
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			visible := m.visible()
			if len(visible) == 0 {
				return m, nil
			}
			m.Selected = &SeriesSelection{Series: m.Dataset.Series[visible[m.Cursor]]}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// updateFilter handles key input while the filter prompt is active.
func (m SeriesListModel) updateFilter(msg tea.KeyMsg) SeriesListModel {
	switch msg.String() {
	case "ctrl+c":
		m.Filtering = false
	case "esc":
		m.Filtering = false
		m.Filter = ""
		m.Cursor, m.Offset = 0, 0
	case "enter":
		m.Filtering = false
	case "backspace":
		if m.Filter != "" {
			r := []rune(m.Filter)
			m.Filter = string(r[:len(r)-1])
			m.Cursor, m.Offset = 0, 0
		}
	case " ":
		m.Filter += " "
		m.Cursor, m.Offset = 0, 0
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			m.Filter += string(msg.Runes)
			m.Cursor, m.Offset = 0, 0
		}
	}
	return m
}

// visible returns the indices of series matching the current filter.
func (m SeriesListModel) visible() []int {
	if m.Filter == "" {
		indices := make([]int, len(m.Dataset.Series))
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	needle := strings.ToLower(m.Filter)
	var indices []int
	for i, s := range m.Dataset.Series {
		if strings.Contains(strings.ToLower(s.DisplayName()), needle) ||
			strings.Contains(strings.ToLower(s.ID), needle) {
			indices = append(indices, i)
		}
	}
	return indices
}

func (m SeriesListModel) View() string {
	var b strings.Builder

	title := "Select Series"
	if m.Dataset.Title != "" {
		title += " — " + m.Dataset.Title
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  / filter  ⏎ select  q quit"))
	b.WriteString("\n")

	if m.Filtering || m.Filter != "" {
		prompt := "/" + m.Filter
		if m.Filtering {
			prompt += "█"
		}
		b.WriteString(listFilterStyle.Render(prompt))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(listDimStyle.Render("  no series match the filter"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Dataset.Series[visible[i]]
		total, placed := seriesTotal(s)

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		points := strconv.Itoa(len(s.Points))
		if placed < len(s.Points) {
			points = fmt.Sprintf("%d (%d null)", len(s.Points), len(s.Points)-placed)
		}

		share := "—"
		if !s.Hidden && m.total > 0 {
			share = fmt.Sprintf("%.1f%%", total/m.total*100)
		}

		rows = append(rows, []string{cursor, s.DisplayName(), points, formatValue(total), share})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Series", "Points", "Total", "Share").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(visible) {
				return lipgloss.NewStyle()
			}
			s := m.Dataset.Series[visible[actualIdx]]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col >= 2 {
				base = base.Foreground(colorGray)
			}

			if isCurrent {
				if s.Hidden {
					return base.Foreground(colorDim).Bold(true)
				}
				if col < 2 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			if s.Hidden {
				return base.Foreground(colorDim)
			}
			if col < 2 {
				return base.Foreground(colorWhite)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	footer := fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(visible))
	if m.Filter != "" {
		footer += fmt.Sprintf("  filtered from %d", len(m.Dataset.Series))
	}
	b.WriteString(listDimStyle.Render(footer))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// seriesTotal sums the non-null point values of a series and counts how
// many points carry a value.
func seriesTotal(s chart.Series) (total float64, placed int) {
	for _, p := range s.Points {
		if p.Value != nil {
			total += *p.Value
			placed++
		}
	}
	return total, placed
}

// formatValue renders a float without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
