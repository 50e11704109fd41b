// Package tui is the terminal front end. Every prompt runs a short lived
// bubbletea program that shows the menu of the current room and returns the
// highlighted option.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/text-rooms/internal/room"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	optionStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Abort  key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Choose: key.NewBinding(key.WithKeys("enter")),
	Abort:  key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

type menu struct {
	room    string
	title   string
	hint    string
	options []string
	cursor  int
	chosen  bool
	aborted bool
}

func newMenu(roomName, title, hint string, options []string) menu {
	return menu{room: roomName, title: title, hint: hint, options: options}
}

func (m menu) Init() tea.Cmd { return nil }

// inputClosedMsg is sent when the input stream ends.
type inputClosedMsg struct{}

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.chosen || m.aborted {
		return m, nil
	}

	switch msg := msg.(type) {
	case inputClosedMsg:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m menu) handleKey(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(km, keys.Choose):
		m.chosen = true
		return m, tea.Quit
	default:
		// Digits pick an option directly.
		if n, err := strconv.Atoi(km.String()); err == nil && n < len(m.options) {
			m.cursor = n
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menu) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.room))
	b.WriteString("\n")
	if m.title != "" {
		b.WriteString(m.title + "\n")
	}
	for i, text := range m.options {
		line := fmt.Sprintf("%d: %s", i, text)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(optionStyle.Render(line) + "\n")
		}
	}
	if m.hint != "" {
		b.WriteString(helpStyle.Render(m.hint) + "\n")
	}
	return b.String()
}

type Options struct {
	Title  string // shown above the options
	Hint   string // key help below the options
	Input  io.Reader // nil reads the terminal
	Output io.Writer
}

// Prompter implements room.Prompter with an interactive menu.
type Prompter struct {
	opts Options
}

func NewPrompter(opts Options) *Prompter {
	return &Prompter{opts: opts}
}

// eofReader tells the program when its input ends; bubbletea stops reading
// at EOF without telling the model.
type eofReader struct {
	r     io.Reader
	once  sync.Once
	onEOF func()
}

func (e *eofReader) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if errors.Is(err, io.EOF) {
		e.once.Do(e.onEOF)
	}
	return n, err
}

// Prompt runs the menu until the player picks an option. Esc, ctrl+c and the
// end of Options.Input return room.ErrInputClosed.
func (p *Prompter) Prompt(ctx context.Context, roomName string, options []string) (int, error) {
	var prog *tea.Program

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.opts.Input != nil {
		in := &eofReader{r: p.opts.Input, onEOF: func() { go prog.Send(inputClosedMsg{}) }}
		progOpts = append(progOpts, tea.WithInput(in))
	}
	if p.opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(p.opts.Output))
	}

	prog = tea.NewProgram(newMenu(roomName, p.opts.Title, p.opts.Hint, options), progOpts...)
	final, err := prog.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", room.ErrInputClosed, err)
	}

	m := final.(menu)
	if !m.chosen {
		return 0, room.ErrInputClosed
	}
	return m.cursor, nil
}

// Console pairs the menu prompter with a narrator for everything else.
type Console struct {
	room.Narrator
	*Prompter
}

func NewConsole(n room.Narrator, p *Prompter) *Console {
	return &Console{Narrator: n, Prompter: p}
}
