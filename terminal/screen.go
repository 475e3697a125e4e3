// Package terminal runs the label editor on a tcell screen.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"labeledit/config"
	"labeledit/diagram"
	"labeledit/editor"
)

// Options configures Run.
type Options struct {
	Theme  config.ThemeConfig
	Logger *slog.Logger

	// Save persists the diagram on Ctrl+S. Nil disables saving.
	Save func(*diagram.Diagram) error
}

// Open creates and initialises a terminal screen. The caller must call Fini.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise screen: %w", err)
	}
	return screen, nil
}

type styles struct {
	base, header, selected, editing, status tcell.Style
}

func newStyles(theme config.ThemeConfig) styles {
	base := tcell.StyleDefault.
		Foreground(color(theme.Foreground)).
		Background(color(theme.Background))
	return styles{
		base:     base,
		header:   base.Foreground(color(theme.Header)).Bold(true),
		selected: base.Foreground(color(theme.Selected)).Bold(true),
		editing:  base.Foreground(color(theme.Editing)).Underline(true),
		status:   base.Foreground(color(theme.Status)).Reverse(true),
	}
}

func color(name string) tcell.Color {
	if name == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(name)
}

func (s styles) forLine(style editor.LineStyle) tcell.Style {
	switch style {
	case editor.StyleHeader:
		return s.header
	case editor.StyleSelected:
		return s.selected
	case editor.StyleEditing:
		return s.editing
	case editor.StyleStatus:
		return s.status
	default:
		return s.base
	}
}

// Run draws ed on screen and feeds it key events until the editor asks to
// quit or the screen is finalised. Keys no binding consumed and whose
// default was not prevented ring the bell.
func Run(screen tcell.Screen, ed *editor.Editor, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	st := newStyles(opts.Theme)
	quitArmed := false

	for {
		draw(screen, ed, st)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			k, ok := TranslateKey(ev)
			if !ok {
				logger.Debug("untranslated key", "name", ev.Name())
				continue
			}
			res := ed.HandleKey(k)
			if res.Save {
				save(ed, opts.Save, logger)
			}
			if res.Quit {
				if ed.Dirty() && !quitArmed {
					quitArmed = true
					ed.SetStatus("unsaved changes, quit again to discard")
					continue
				}
				return nil
			}
			quitArmed = false
			if !res.Consumed && !res.DefaultPrevented {
				screen.Beep()
			}
		}
	}
}

func save(ed *editor.Editor, fn func(*diagram.Diagram) error, logger *slog.Logger) {
	if fn == nil {
		ed.SetStatus("saving is disabled")
		return
	}
	if err := fn(ed.Diagram()); err != nil {
		logger.Error("save failed", "error", err)
		ed.SetStatus("save failed: " + err.Error())
		return
	}
	ed.MarkSaved()
}

// draw renders the editor, keeping the status line on the last row and the
// active line in view.
func draw(screen tcell.Screen, ed *editor.Editor, st styles) {
	screen.Clear()
	width, height := screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	lines := editor.RenderView(ed.View())
	status := lines[len(lines)-1]
	body := lines[:len(lines)-1]

	rows := height - 1
	offset := 0
	if focus := focusLine(body); focus >= rows && rows > 0 {
		offset = focus - rows + 1
	}

	screen.HideCursor()
	for y := 0; y < rows && offset+y < len(body); y++ {
		line := body[offset+y]
		cx := drawLine(screen, y, width, line.Text, st.forLine(line.Style), line.Cursor)
		if cx >= 0 {
			screen.ShowCursor(cx, y)
		}
	}
	drawLine(screen, height-1, width, status.Text, st.status, -1)
}

func focusLine(lines []editor.Line) int {
	focus := -1
	for i, l := range lines {
		switch l.Style {
		case editor.StyleEditing:
			return i
		case editor.StyleSelected:
			if focus < 0 {
				focus = i
			}
		}
	}
	return focus
}

// drawLine writes text on row y, padding to width, and returns the screen
// column of the rune index cursor, or -1.
func drawLine(screen tcell.Screen, y, width int, text string, style tcell.Style, cursor int) int {
	x := 0
	cx := -1
	i := 0
	for _, r := range text {
		if i == cursor {
			cx = x
		}
		i++
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	if cursor >= i && cx < 0 {
		cx = x
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	if cx >= width {
		cx = width - 1
	}
	return cx
}
