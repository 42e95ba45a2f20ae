package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hillclimb/heightmap"
)

var (
	terrainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	routeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4"))
	markerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11"))
)

// renderMap draws m one character per cell, highlighting route cells and
// the route's endpoints.
func renderMap(m *heightmap.Map, route []heightmap.Position) string {
	onRoute := make(map[heightmap.Position]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}
	var first, last heightmap.Position
	if len(route) > 0 {
		first, last = route[0], route[len(route)-1]
	}

	rows, cols := m.Grid.Dims()
	lines := make([]string, rows)
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		sb.Reset()
		for c := 0; c < cols; c++ {
			p := heightmap.Position{Row: r, Col: c}
			ch := cellChar(m, p)
			switch {
			case len(route) > 0 && (p == first || p == last):
				sb.WriteString(markerStyle.Render(ch))
			case onRoute[p]:
				sb.WriteString(routeStyle.Render(ch))
			default:
				sb.WriteString(terrainStyle.Render(ch))
			}
		}
		lines[r] = sb.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// cellChar returns the input character for p: a marker or 'a'+elevation.
func cellChar(m *heightmap.Map, p heightmap.Position) string {
	switch p {
	case m.Start:
		return string(heightmap.StartMarker)
	case m.End:
		return string(heightmap.EndMarker)
	}
	e, err := m.Grid.Elevation(p)
	if err != nil {
		return "?"
	}
	return string(rune('a' + e))
}
