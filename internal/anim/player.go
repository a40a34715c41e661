package anim

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/probeviz/internal/viz"
)

type TickMsg time.Time

// Player loops an animation in the terminal. It runs in its own program so
// it can be closed without touching the figure windows.
type Player struct {
	anim      *Animation
	interval  time.Duration
	running   bool
	frame     Frame
	recording bool
	frames    []*image.Paletted
	gifPath   string
	status    string
}

func NewPlayer(a *Animation, gifPath string) Player {
	return Player{anim: a, interval: 10 * time.Millisecond, running: true, gifPath: gifPath}
}

func (m Player) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Player) Init() tea.Cmd { return m.tick() }

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viz.Keys.Quit):
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			m.running = !m.running
		case key.Matches(msg, keys.Restart):
			m.anim.Reset()
		case key.Matches(msg, viz.Keys.Theme):
			viz.NextTheme()
		case key.Matches(msg, keys.Record):
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else if m.gifPath != "" {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Player) step() {
	gen := m.anim.Generator()
	f, ok := gen.Next()
	if !ok {
		m.anim.Reset()
		if f, ok = gen.Next(); !ok {
			return
		}
	}
	m.frame = f
	m.anim.Draw(f)
	if m.recording {
		m.frames = append(m.frames, m.anim.Canvas().Image(charW, charH))
	}
}

func (m *Player) saveGIF() {
	f, err := os.Create(m.gifPath)
	if err != nil {
		m.status = err.Error()
		return
	}
	defer f.Close()
	if err := encodeGIF(f, m.frames, m.anim.cfg.GIFDelay); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
	log.Print(m.status)
}

func (m Player) View() string {
	var s strings.Builder
	s.WriteString(viz.GradientText("ANIMATION", viz.CurrentTheme.TitleFrom, viz.CurrentTheme.TitleTo) + "\n")
	s.WriteString(m.anim.Canvas().String())

	gen := m.anim.Generator()
	progress := 0.0
	if gen.Len() > 0 {
		progress = float64(gen.Pos()) / float64(gen.Len())
	}
	s.WriteString(viz.ProgressBar(progress, 30) + fmt.Sprintf("  t=%.3fs", m.frame.Time) + "\n")

	state := "PLAYING"
	if !m.running {
		state = "PAUSED"
	}
	if m.recording {
		state += "  REC"
	}
	s.WriteString(viz.Subtle.Render(state) + "\n")
	if m.status != "" {
		s.WriteString(viz.Subtle.Render(m.status) + "\n")
	}
	s.WriteString(viz.ShortHelp(bindings()))
	return s.String()
}

// Play runs the player until the user quits.
func Play(a *Animation, gifPath string, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewPlayer(a, gifPath), opts...).Run()
	return err
}
