// Package console is the line based front end: it prints narration to a
// writer and reads one option number per line.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/cancelreader"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/message"

	"github.com/tatianab/text-rooms/internal/room"
)

type Options struct {
	Language  string // "de" or "en"
	WrapWidth int    // 0 disables wrapping
}

type line struct {
	text string
	err  error
}

// Console implements room.Console on plain text streams. Input is read by a
// background goroutine started on the first Prompt so that a waiting prompt
// can be cancelled.
type Console struct {
	in        *bufio.Reader
	canceler  cancelreader.CancelReader // nil when in cannot be cancelled
	lines     chan line
	done      chan struct{}
	startRead sync.Once
	closeOnce sync.Once

	out   io.Writer
	p     *message.Printer
	width int

	roomStyle  lipgloss.Style
	itemStyle  lipgloss.Style
	errorStyle lipgloss.Style
	sayStyle   lipgloss.Style
	hintStyle  lipgloss.Style
}

func New(in io.Reader, out io.Writer, opts Options) *Console {
	var canceler cancelreader.CancelReader
	if cr, err := cancelreader.NewReader(in); err == nil {
		canceler, in = cr, cr
	}

	r := lipgloss.NewRenderer(out)
	return &Console{
		in:         bufio.NewReader(in),
		canceler:   canceler,
		lines:      make(chan line),
		done:       make(chan struct{}),
		out:        out,
		p:          message.NewPrinter(tagFor(opts.Language)),
		width:      opts.WrapWidth,
		roomStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500")),
		itemStyle:  r.NewStyle().Foreground(lipgloss.Color("86")),
		errorStyle: r.NewStyle().Foreground(lipgloss.Color("196")),
		sayStyle:   r.NewStyle().Italic(true),
		hintStyle:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Labels returns the localized texts of the synthetic options and the menu.
func (c *Console) Labels() Labels {
	return Labels{
		Back:   c.p.Sprintf(msgBack),
		Quit:   c.p.Sprintf(msgQuit),
		Choose: c.p.Sprintf(msgChoose),
		Hint:   c.p.Sprintf(msgMenuHint),
	}
}

func (c *Console) println(text string) {
	if c.width > 0 {
		text = wordwrap.String(text, c.width)
	}
	_, _ = fmt.Fprintln(c.out, text)
}

func (c *Console) Welcome(roomName string) {
	c.println(c.p.Sprintf(msgWelcome, c.roomStyle.Render(roomName)))
}

func (c *Console) PickedUp(item string, inventory []string) {
	c.println(c.p.Sprintf(msgPicked, c.itemStyle.Render(item)))
	c.println(c.p.Sprintf(msgInventory, strings.Join(inventory, ", ")))
}

func (c *Console) Stay(roomName string) {
	c.println(c.p.Sprintf(msgStay, roomName))
}

func (c *Console) Transition(from, to string) {
	c.println(c.p.Sprintf(msgTransition, from, c.roomStyle.Render(to)))
}

func (c *Console) InvalidChoice(err error, count int) {
	if errors.Is(err, room.ErrOutOfRange) {
		c.println(c.errorStyle.Render(c.p.Sprintf(msgOutOfRange, count-1)))
		return
	}
	c.println(c.errorStyle.Render(c.p.Sprintf(msgNotANumber)))
}

func (c *Console) Say(text string) {
	c.println(c.sayStyle.Render(text))
}

// Prompt prints the menu and waits for one line. Cancelling ctx ends the wait;
// a line typed afterwards is kept for the next Prompt.
func (c *Console) Prompt(ctx context.Context, _ string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.println(c.p.Sprintf(msgChoose))
	for i, text := range options {
		c.println(fmt.Sprintf("  %d: %s", i, text))
	}

	select {
	case <-c.done:
		return 0, room.ErrInputClosed
	default:
	}
	c.startRead.Do(func() { go c.readLines() })

	var l line
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case next, ok := <-c.lines:
		if !ok {
			return 0, room.ErrInputClosed
		}
		l = next
	}

	if l.err != nil && (!errors.Is(l.err, io.EOF) || l.text == "") {
		if errors.Is(l.err, io.EOF) || errors.Is(l.err, cancelreader.ErrCanceled) {
			return 0, room.ErrInputClosed
		}
		return 0, fmt.Errorf("%w: %v", room.ErrInputClosed, l.err)
	}

	text := strings.TrimSpace(l.text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", room.ErrInvalidInput, text)
	}
	return n, nil
}

func (c *Console) readLines() {
	defer close(c.lines)
	for {
		text, err := c.in.ReadString('\n')
		select {
		case c.lines <- line{text: text, err: err}:
		case <-c.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// Close stops the input goroutine. Prompts after Close report closed input.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.canceler != nil {
			c.canceler.Cancel()
		}
	})
	return nil
}
