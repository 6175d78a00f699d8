package guess

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/corelab/internal/config"
	"github.com/san-kum/corelab/internal/storage"
	"github.com/san-kum/corelab/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const maxInputLen = 9

type state int

const (
	stateMenu state = iota
	statePlaying
	stateSummary
)

type savedMsg struct {
	id  string
	err error
}

// Model is the bubbletea front end.
type Model struct {
	state   state
	options []config.Difficulty
	cursor  int

	game    *Game
	input   string
	message string
	log     []string

	rng     *rand.Rand
	saver   storage.Saver
	savedID string
	saveErr error
}

// NewModel builds the menu from options, which must not be empty; the
// cursor starts on the entry named selected.
func NewModel(options []config.Difficulty, selected string, rng *rand.Rand, saver storage.Saver) Model {
	m := Model{options: options, rng: rng, saver: saver}
	for i, d := range options {
		if strings.EqualFold(d.Name, selected) {
			m.cursor = i
		}
	}
	return m
}

// MenuOptions lists the presets easiest first, followed by extra when it
// is a custom difficulty.
func MenuOptions(extra *config.Difficulty) []config.Difficulty {
	var out []config.Difficulty
	for _, name := range config.ListPresets() {
		d, _ := config.GetPreset(name)
		out = append(out, d)
	}
	if extra != nil && extra.Level == config.CustomLevel {
		out = append(out, *extra)
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case statePlaying:
			return m.playKey(msg)
		case stateSummary:
			return m.summaryKey(msg)
		}
	case savedMsg:
		m.savedID, m.saveErr = msg.id, msg.err
	}
	return m, nil
}

func (m Model) menuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter", " ":
		g, err := NewGame(m.options[m.cursor], m.rng)
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.game = g
		m.state = statePlaying
		m.input, m.message, m.log = "", "", nil
		m.savedID, m.saveErr = "", nil
	}
	return m, nil
}

func (m Model) playKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateMenu
		m.game = nil
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || (r == '-' && m.input == "") {
				if len(m.input) < maxInputLen {
					m.input += string(r)
				}
			}
		}
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	n, err := strconv.Atoi(m.input)
	m.input = ""
	if err != nil {
		m.message = "Please enter a number."
		return m, nil
	}

	o, err := m.game.Guess(n)
	var re *RangeError
	if errors.As(err, &re) {
		m.message = fmt.Sprintf("Enter a number between %d and %d.", re.Min, re.Max)
		return m, nil
	}
	if err != nil {
		m.message = err.Error()
		return m, nil
	}

	m.message = o.String()
	m.log = append(m.log, fmt.Sprintf("%2d. %-6d %s", o.Attempt, o.Guess, o))
	if !o.Over {
		return m, nil
	}
	m.state = stateSummary
	return m, m.saveCmd()
}

func (m Model) saveCmd() tea.Cmd {
	if m.saver == nil {
		return nil
	}
	saver, rec := m.saver, m.game.Record()
	return func() tea.Msg {
		id, err := saver.Save(rec)
		return savedMsg{id: id, err: err}
	}
}

func (m Model) summaryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r", "enter":
		m.state = stateMenu
		m.game = nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case statePlaying:
		return m.viewPlaying()
	case stateSummary:
		return m.viewSummary()
	}
	return ""
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(viz.Banner("Number Guessing Game", "pick a difficulty") + "\n\n")
	for i, d := range m.options {
		desc := fmt.Sprintf("%d-%d, %d attempts", d.Min, d.Max, d.MaxAttempts)
		if i == m.cursor {
			b.WriteString("  " + cyan.Render("▸ ") + viz.Highlight.Render(fmt.Sprintf("%-8s", d.Name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("    " + dim.Render(fmt.Sprintf("%-8s", d.Name)) + dimmer.Render(desc) + "\n")
		}
	}
	if m.message != "" {
		b.WriteString("\n  " + viz.ErrorText.Render(m.message) + "\n")
	}
	b.WriteString("\n" + viz.KeyHint.Render("  ↑/↓ select · enter play · q quit") + "\n")
	return b.String()
}

func (m Model) viewPlaying() string {
	d := m.game.Difficulty()
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + viz.Title.Render(d.Name) + dim.Render(fmt.Sprintf("  range %d-%d", d.Min, d.Max)) + "\n")

	left := float64(m.game.Remaining()) / float64(d.MaxAttempts)
	b.WriteString("  " + viz.ProgressBar(left, 20) + dim.Render(fmt.Sprintf(" %d left", m.game.Remaining())) + "\n\n")

	for _, l := range m.log {
		b.WriteString("  " + dim.Render(l) + "\n")
	}
	if m.message != "" {
		b.WriteString("\n  " + viz.ResultText.Render(m.message) + "\n")
	}
	b.WriteString("\n  " + cyan.Render("guess> ") + m.input + cyan.Render("█") + "\n")
	b.WriteString("\n" + viz.KeyHint.Render("  enter submit · esc menu · ctrl+c quit") + "\n")
	return b.String()
}

func (m Model) viewSummary() string {
	g := m.game
	var b strings.Builder
	b.WriteString("\n")
	if g.Won() {
		b.WriteString("  " + viz.Success.Render("Victory!") + "\n")
	} else {
		b.WriteString("  " + viz.ErrorText.Render("Game over") + "\n")
	}
	b.WriteString(fmt.Sprintf("  %s %d\n", viz.MetricLabel.Render("secret  "), g.Secret()))
	b.WriteString(fmt.Sprintf("  %s %d/%d\n", viz.MetricLabel.Render("attempts"), g.Attempts(), g.Difficulty().MaxAttempts))
	b.WriteString(fmt.Sprintf("  %s %d\n", viz.MetricLabel.Render("score   "), g.Score()))
	b.WriteString("  " + g.Rating() + "\n")

	hist := g.History()
	if len(hist) > 1 {
		vals := make([]float64, len(hist))
		for i, h := range hist {
			vals[i] = float64(h)
		}
		b.WriteString("  " + viz.SparklineChart(vals, 30) + "\n")
	}

	switch {
	case m.saveErr != nil:
		b.WriteString("\n  " + viz.ErrorText.Render("not saved: "+m.saveErr.Error()) + "\n")
	case m.savedID != "":
		b.WriteString("\n  " + dim.Render("saved as "+m.savedID) + "\n")
	}
	b.WriteString("\n  " + viz.Separator(30) + "\n")
	b.WriteString(viz.KeyHint.Render("  r play again · q quit") + "\n")
	return b.String()
}

// Finished reports the last completed game, or nil.
func (m Model) Finished() *Game {
	if m.state != stateSummary {
		return nil
	}
	return m.game
}
