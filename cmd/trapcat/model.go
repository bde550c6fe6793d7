package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	rimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// namedColors maps the CSS names some cats use onto terminal palette
// entries. Black is drawn light so it shows on dark terminals.
var namedColors = map[string]string{
	"black": "252",
	"red":   "9",
	"blue":  "12",
	"white": "15",
}

func termColor(c string) lipgloss.Color {
	if mapped, ok := namedColors[c]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(c)
}

type model struct {
	game   *engine.Game
	snap   engine.Snapshot
	cursor game.Hex
	// column is the screen column the cursor tries to keep on vertical moves
	column int
}

func newModel(g *engine.Game) model {
	return model{game: g, snap: g.Snapshot()}
}

func (m model) Init() tea.Cmd {
	return nil
}

// screenX is the horizontal position of h in half-cell units.
func screenX(h game.Hex) int {
	return 2*h.Q + h.R
}

func (m model) move(d game.Direction) model {
	next := m.cursor.Add(d.Vec())
	if next.Len() <= m.snap.Depth {
		m.cursor = next
	}
	return m
}

// vertical moves one row up (dr=-1) or down (dr=1), picking whichever of
// the two diagonal neighbours lands closer to the remembered column.
func (m model) vertical(dr int) model {
	var left, right game.Direction
	if dr < 0 {
		left, right = game.TopLeft, game.TopRight
	} else {
		left, right = game.BottomLeft, game.BottomRight
	}
	a, b := m.cursor.Add(left.Vec()), m.cursor.Add(right.Vec())
	da, db := abs(screenX(a)-m.column), abs(screenX(b)-m.column)

	switch {
	case a.Len() <= m.snap.Depth && (da <= db || b.Len() > m.snap.Depth):
		m.cursor = a
	case b.Len() <= m.snap.Depth:
		m.cursor = b
	}
	return m
}

func (m model) handle(ev engine.Event) model {
	m.snap = m.game.Handle(ev)
	if m.cursor.Len() > m.snap.Depth {
		m.cursor = game.Origin
		m.column = 0
	}
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m = m.move(game.Left)
		m.column = screenX(m.cursor)
	case "right", "l":
		m = m.move(game.Right)
		m.column = screenX(m.cursor)
	case "up", "k":
		m = m.vertical(-1)
	case "down", "j":
		m = m.vertical(1)
	case " ", "enter":
		if m.snap.Status.Terminal() {
			m = m.handle(engine.Event{Kind: engine.ResetRequested})
		} else {
			m = m.handle(engine.Event{Kind: engine.CellClicked, Cell: m.cursor})
		}
	case "r":
		m = m.handle(engine.Event{Kind: engine.ResetRequested})
	case "d":
		m = m.handle(engine.Event{Kind: engine.DifficultyChangeRequested})
	case "v":
		m = m.handle(engine.Event{Kind: engine.VariantChangeRequested})
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	v := m.snap.Variant
	catStyle := lipgloss.NewStyle().Bold(true).Foreground(termColor(v.Color))

	sb.WriteString(titleStyle.Render("Trap the cat") + "  " + catStyle.Render(v.Name) + "\n")
	fmt.Fprintf(&sb, "%s  difficulty %s  turn %d\n\n", v.Description, stars(v.Difficulty), m.snap.Turn)

	sb.WriteString(renderBoard(m.snap, m.cursor, catStyle))
	sb.WriteString("\n")

	switch m.snap.Status {
	case game.Won:
		sb.WriteString(wonStyle.Render("You trapped the cat!") + " Press space to play again.\n")
	case game.Lost:
		sb.WriteString(lostStyle.Render("The cat got away.") + " Press space to play again.\n")
	default:
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("arrows/hjkl move • space place • r reset • d difficulty • v cat • q quit") + "\n")
	return sb.String()
}

// renderBoard draws the hexagon row by row, each row indented by half a
// cell per step away from the middle row.
func renderBoard(snap engine.Snapshot, cursor game.Hex, catStyle lipgloss.Style) string {
	obstacles := make(map[game.Hex]bool, len(snap.Obstacles))
	for _, o := range snap.Obstacles {
		obstacles[o] = true
	}

	var sb strings.Builder
	d := snap.Depth
	for r := -d; r <= d; r++ {
		sb.WriteString(strings.Repeat(" ", abs(r)))
		for q := max(-d, -d-r); q <= min(d, d-r); q++ {
			h := game.Hex{Q: q, R: r}

			var cell string
			switch {
			case h == snap.Cat:
				cell = catStyle.Render("C")
			case obstacles[h]:
				cell = wallStyle.Render("#")
			case h.Len() == d:
				cell = rimStyle.Render("o")
			default:
				cell = openStyle.Render(".")
			}
			if h == cursor {
				cell = cursorStyle.Render(cell)
			}
			sb.WriteString(cell)
			if q < min(d, d-r) {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func stars(n int) string {
	n = max(0, min(n, 4))
	return strings.Repeat("★", n) + strings.Repeat("☆", 4-n)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
