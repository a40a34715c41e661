package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/probeviz/internal/figure"
)

const (
	defaultWidth  = 100
	defaultHeight = 40
	// rows taken by the title, separator and key hints
	chromeRows = 5
)

// Viewer pages through the figures of a host. Closing the viewer closes the
// figure on screen, which takes every other open figure with it.
type Viewer struct {
	host          *figure.Host
	page          int
	width, height int
	showHelp      bool
}

func NewViewer(h *figure.Host) Viewer {
	return Viewer{host: h, width: defaultWidth, height: defaultHeight}
}

func (m Viewer) Init() tea.Cmd { return nil }

func (m Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		n := max(len(m.host.Figures()), 1)
		switch {
		case key.Matches(msg, Keys.Quit):
			if f := m.current(); f != nil {
				m.host.Close(f)
			}
			return m, tea.Quit
		case key.Matches(msg, Keys.Next):
			m.page = (m.page + 1) % n
		case key.Matches(msg, Keys.Prev):
			m.page = (m.page + n - 1) % n
		case key.Matches(msg, Keys.Theme):
			NextTheme()
		case key.Matches(msg, Keys.Help):
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m Viewer) current() *figure.Figure {
	figs := m.host.Figures()
	if len(figs) == 0 {
		return nil
	}
	return figs[m.page%len(figs)]
}

func (m Viewer) View() string {
	f := m.current()
	if f == nil {
		return Subtle.Render("no figures") + "\n"
	}

	var s strings.Builder
	title := fmt.Sprintf("FIGURE %d/%d", f.Index, len(m.host.Figures()))
	if f.Title != "" {
		title += "  " + f.Title
	}
	s.WriteString(GradientText(title, CurrentTheme.TitleFrom, CurrentTheme.TitleTo) + "\n")
	s.WriteString(Separator(m.width-4) + "\n")
	s.WriteString(RenderFigure(f, m.width-4, m.height-chromeRows))
	if m.showHelp {
		s.WriteString("\n" + FullHelp(Keys.Bindings()))
		s.WriteString("\n" + KeyHint.Render("themes: "+strings.Join(ThemeNames(), ", ")))
	} else {
		s.WriteString("\n" + ShortHelp(Keys.Bindings()))
	}
	return s.String()
}

// RenderFigure stacks the subplots of f into w x h cells.
func RenderFigure(f *figure.Figure, w, h int) string {
	if len(f.Axes) == 0 {
		return ""
	}
	// each axes carries a border, a label and possibly a legend line
	per := max(h/len(f.Axes)-4, 2)
	parts := make([]string, 0, len(f.Axes))
	for _, ax := range f.Axes {
		parts = append(parts, panelStyle.Render(RenderAxes(ax, w-4, per)))
	}
	return strings.Join(parts, "\n")
}

// Show runs the viewer until the user closes it. The host is fully closed
// when Show returns.
func Show(h *figure.Host, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewViewer(h), opts...).Run()
	if open := h.Open(); len(open) > 0 {
		h.Close(open[0])
	}
	return err
}
