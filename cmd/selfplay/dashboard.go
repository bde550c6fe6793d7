package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/trapcat/selfplay"
	"github.com/brensch/trapcat/store"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	wonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type model struct {
	gamesPlayed int
	moves       int64
	startTime   time.Time
	recentGames []string
	stats       map[string]store.VariantStats
	updates     chan selfplay.GameResult
}

func initialModel(updates chan selfplay.GameResult) model {
	return model{
		startTime: time.Now(),
		stats:     make(map[string]store.VariantStats),
		updates:   updates,
	}
}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForUpdate(updates chan selfplay.GameResult) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case TickMsg:
		m.moves = totalMoves.Load()
		return m, tickCmd()
	case selfplay.GameResult:
		m.gamesPlayed++
		cur := m.stats[msg.Variant]
		cur.Add(msg.Row())
		m.stats[msg.Variant] = cur
		line := fmt.Sprintf("%-7s vs %-8s %-7s in %3d turns", msg.Variant, msg.Player, msg.Status, msg.Turns)
		m.recentGames = append([]string{line}, m.recentGames...)
		if len(m.recentGames) > 10 {
			m.recentGames = m.recentGames[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	gamesPerSec := float64(m.gamesPlayed) / duration.Seconds()
	movesPerSec := float64(m.moves) / duration.Seconds()
	if duration.Seconds() < 1 {
		gamesPerSec = 0
		movesPerSec = 0
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("trapcat self-play") + "\n\n")
	fmt.Fprintf(&sb, "%s %d\n", labelStyle.Render("Games Played:"), m.gamesPlayed)
	fmt.Fprintf(&sb, "%s %d\n", labelStyle.Render("Total Moves: "), m.moves)
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Duration:    "), duration.Round(time.Second))
	fmt.Fprintf(&sb, "%s %.2f\n", labelStyle.Render("Games/Sec:   "), gamesPerSec)
	fmt.Fprintf(&sb, "%s %.2f\n\n", labelStyle.Render("Moves/Sec:   "), movesPerSec)

	ids := make([]string, 0, len(m.stats))
	for id := range m.stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	sb.WriteString("Win rate by cat:\n")
	for _, id := range ids {
		s := m.stats[id]
		fmt.Fprintf(&sb, "  %-7s %s %s  %5.1f%%\n", id,
			wonStyle.Render(fmt.Sprintf("%4d won", s.Won)),
			lostStyle.Render(fmt.Sprintf("%4d lost", s.Lost)),
			100*s.WinRate())
	}

	sb.WriteString("\nRecent Games:\n")
	for _, g := range m.recentGames {
		sb.WriteString(g + "\n")
	}

	sb.WriteString("\nPress q to quit.\n")
	return sb.String()
}
