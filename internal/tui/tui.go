// Package tui previews the board in a terminal. It drives the same widget
// state as the overlay, so seed events and decay behave identically, just
// drawn with cell glyphs instead of pixels.
package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WaterKat/CGOL-Widget/internal/config"
	"github.com/WaterKat/CGOL-Widget/internal/render"
	"github.com/WaterKat/CGOL-Widget/internal/widget"
)

// tickMsg carries the wall clock time of one pacing tick.
type tickMsg time.Time

type keymap struct {
	Pause  key.Binding
	Step   key.Binding
	Seed   key.Binding
	Reseed key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Seed, k.Reseed, k.Clear, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Step, k.Seed}, {k.Reseed, k.Clear, k.Quit}}
}

func defaultKeymap() keymap {
	return keymap{
		Pause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Step:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
		Seed:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "seed")),
		Reseed: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reseed")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App is the bubbletea model. Update and View run on the program's event
// loop, which makes that goroutine the owner of the widget state.
type App struct {
	state    *widget.State
	interval time.Duration

	keys keymap
	help help.Model

	aliveCell string
	deadCell  string
	status    lipgloss.Style

	width  int
	height int
}

// New builds the terminal model around an existing widget state.
func New(state *widget.State, cfg *config.Config) (*App, error) {
	alive, err := render.ParseColor(cfg.Render.AliveColor)
	if err != nil {
		return nil, fmt.Errorf("alive color: %w", err)
	}
	dead, err := render.ParseColor(cfg.Render.DeadColor)
	if err != nil {
		return nil, fmt.Errorf("dead color: %w", err)
	}

	// Terminals have no alpha channel, so a transparent dead color becomes
	// bare background and anything else becomes a solid block.
	deadCell := "  "
	if dead.A > 0 {
		deadCell = lipgloss.NewStyle().Foreground(lipgloss.Color(opaqueHex(dead))).Render("██")
	}

	return &App{
		state:     state,
		interval:  state.StepInterval(),
		keys:      defaultKeymap(),
		help:      help.New(),
		aliveCell: lipgloss.NewStyle().Foreground(lipgloss.Color(opaqueHex(alive))).Render("██"),
		deadCell:  deadCell,
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	}, nil
}

func opaqueHex(c color.NRGBA) string {
	c.A = 0xff
	return render.HexString(c)
}

// Init arms the first pacing tick.
func (a *App) Init() tea.Cmd {
	return a.scheduleTick()
}

func (a *App) scheduleTick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update advances the board on ticks and maps keys onto widget actions.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tickMsg:
		// Ticks keep flowing while paused so queued seeds still drain
		// and the footer stays current.
		a.state.Tick(time.Time(msg))
		return a, a.scheduleTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Pause):
			a.state.TogglePause()
		case key.Matches(msg, a.keys.Step):
			a.state.StepOnce(time.Now())
		case key.Matches(msg, a.keys.Seed):
			a.state.Enqueue(widget.SeedRequest{Source: "keyboard"})
		case key.Matches(msg, a.keys.Reseed):
			a.state.Reseed()
		case key.Matches(msg, a.keys.Clear):
			a.state.Clear()
		}
	}

	return a, nil
}

// View renders the visible slice of the board plus a status footer.
func (a *App) View() string {
	cells := a.state.Cells()
	w, h := a.state.Size()
	viewW, viewH := a.viewport(w, h)

	var b strings.Builder
	b.Grow(viewH * (viewW*2 + 1))
	for y := 0; y < viewH; y++ {
		row := cells[y*w : y*w+w]
		for x := 0; x < viewW; x++ {
			if row[x] != 0 {
				b.WriteString(a.aliveCell)
			} else {
				b.WriteString(a.deadCell)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(a.statusLine())
	b.WriteByte('\n')
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

// viewport clips the board to the terminal, two columns per cell and two
// rows reserved for the footer.
func (a *App) viewport(w, h int) (int, int) {
	if a.width > 0 && w*2 > a.width {
		w = a.width / 2
	}
	if a.height > 0 && h+2 > a.height {
		h = a.height - 2
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (a *App) statusLine() string {
	parts := []string{
		fmt.Sprintf("gen %d", a.state.Generation()),
		fmt.Sprintf("alive %d", a.state.Alive()),
	}
	if a.state.Paused() {
		parts = append(parts, "paused")
	}
	if a.state.Dissolving() {
		parts = append(parts, "dissolving")
	}
	return a.status.Render(strings.Join(parts, " · "))
}
