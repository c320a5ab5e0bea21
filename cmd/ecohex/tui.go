package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fenwood/ecohex/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

type tickMsg time.Time

// dashboard is the bubbletea model driving the --watch live view.
type dashboard struct {
	sim      *engine.Simulation
	maxTurns int
	quitting bool
}

func runTUI(sim *engine.Simulation, maxTurns int) int {
	m := dashboard{sim: sim, maxTurns: maxTurns}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}

func (m dashboard) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.sim.TogglePause()
		}
	case tickMsg:
		if m.maxTurns > 0 && m.sim.Turn >= m.maxTurns {
			m.quitting = true
			return m, tea.Quit
		}
		m.sim.Step()
		return m, tickCmd()
	}
	return m, nil
}

func (m dashboard) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sim.Stats()
	pop := snap.Population

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("ecohex — turn %d", snap.Turn)))
	b.WriteString("\n\n")

	writeRow(&b, "population", fmt.Sprintf("%d (herbivores %d, carnivores %d, omnivores %d)",
		pop.Total, pop.Herbivores, pop.Carnivores, pop.Omnivores))
	writeRow(&b, "age bands", fmt.Sprintf("young %d, adult %d, old %d — avg %.1f, max gen %d",
		pop.YoungAge, pop.Adult, pop.Old, pop.AverageAge, pop.MaxGeneration))
	writeRow(&b, "this turn", fmt.Sprintf("moving %d, hungry %d, thirsty %d, mating %d",
		snap.TurnState.Moving, snap.TurnState.Hungry, snap.TurnState.Thirsty, snap.TurnState.Mating))
	writeRow(&b, "resources", fmt.Sprintf("plant %.1f, meat %.1f, watered tiles %d",
		snap.Resources.AveragePlantFood, snap.Resources.AverageMeat, snap.Resources.TilesWithWater))
	writeRow(&b, "scents", fmt.Sprintf("%d active", snap.TotalScents))

	if m.sim.Paused {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("PAUSED"))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("space: pause/resume   q: quit"))
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
