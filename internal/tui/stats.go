package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/tasker/internal/store"
	"github.com/sadopc/tasker/internal/theme"
	"github.com/sadopc/tasker/internal/view"
)

type statsModel struct {
	active *store.List
	width  int
	height int

	chart barchart.Model
}

func newStatsModel(active *store.List) statsModel {
	return statsModel{
		active: active,
		chart:  barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

var (
	doneBarStyle = lipgloss.NewStyle().Foreground(theme.ColorSuccess)
	openBarStyle = lipgloss.NewStyle().Foreground(theme.ColorCyan)
)

// buildChart draws one stacked bar per board: completed items below,
// open items above.
func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, c := range view.BoardCounts(s.active.Tasks()) {
		bars = append(bars, barchart.BarData{
			Label: c.Name,
			Values: []barchart.BarValue{
				{Name: "done", Value: float64(c.Done), Style: doneBarStyle},
				{Name: "open", Value: float64(c.Total - c.Done), Style: openBarStyle},
			},
		})
	}
	if len(bars) == 0 {
		bars = []barchart.BarData{{Label: "", Values: []barchart.BarValue{{Name: "", Value: 0, Style: mutedStyle}}}}
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4
	tasks := s.active.Tasks()

	header := titleStyle.Render("Stats")
	if len(tasks) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, header, "", mutedStyle.Render("  No items yet")),
		)
	}

	legend := "  " + doneBarStyle.Render("█") + " done  " + openBarStyle.Render("█") + " open"

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", s.chart.View(), "", legend, "", s.renderTable(w), "", view.Overview(tasks),
		),
	)
}

func (s statsModel) renderTable(w int) string {
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-24s %6s %6s %6s", "Board", "Done", "Total", "%")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 46))))

	for _, c := range view.BoardCounts(s.active.Tasks()) {
		pct := 0
		if c.Total > 0 {
			pct = c.Done * 100 / c.Total
		}
		rows = append(rows, fmt.Sprintf("  %-24s %6d %6d %5d%%", c.Name, c.Done, c.Total, pct))
	}
	return strings.Join(rows, "\n")
}
