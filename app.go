package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/cansyan/boxes/config"
	"github.com/cansyan/boxes/layout"
	"github.com/cansyan/boxes/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.design/x/clipboard"
)

const demoTree = `
id: root
children:
  - id: header
    content: boxes
  - id: body
    children:
      - id: files
        classes: [panel]
        content: files
      - id: editor
        classes: [panel]
        content: Tab moves the highlight, c copies the screen, r redraws.
      - id: outline
        classes: [panel]
        content: outline
  - id: status
`

const demoSheet = `
rules:
  - id: root
    styles:
      - orientation: vertical
  - id: header
    styles:
      - max: 3
      - halign: center
      - valign: center
  - id: body
    styles:
      - max: 80%
  - id: status
    styles:
      - max: 1
      - halign: right
  - class: panel
    styles:
      - max: 25%
      - wrap: true
      - margin: 1
  - id: editor
    styles:
      - max: 50%
  - class: active
    styles:
      - halign: center
      - valign: center
`

// activeClass marks the highlighted panel.
const activeClass = "active"

// loadDocument returns the container tree and style rules named by cfg,
// falling back to the built-in demo.
func loadDocument(cfg *config.Config) (*layout.Container, []layout.Rule, error) {
	var (
		root *layout.Container
		err  error
	)
	if cfg.Layout != "" {
		root, err = layout.LoadTree(cfg.Layout)
	} else {
		root, err = layout.ParseTree([]byte(demoTree))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load layout: %w", err)
	}

	var rules []layout.Rule
	switch {
	case cfg.Stylesheet != "":
		rules, err = layout.LoadSheet(cfg.Stylesheet)
	case cfg.Layout == "":
		rules, err = layout.ParseSheet([]byte(demoSheet))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load style sheet: %w", err)
	}
	return root, rules, nil
}

// parseKey accepts a single character or a tcell key name such as "Esc"
// or "Ctrl-Q", case insensitive.
func parseKey(s string) (ui.Key, error) {
	if r := []rune(s); len(r) == 1 {
		return ui.KeyRune(r[0]), nil
	}
	var (
		found bool
		code  tcell.Key
	)
	for k, name := range tcell.KeyNames {
		if strings.EqualFold(name, s) && (!found || k < code) {
			found, code = true, k
		}
	}
	if !found {
		return ui.Key{}, fmt.Errorf("unknown key %q", s)
	}
	return ui.KeyCode(code), nil
}

// App is the interactive viewer.
type App struct {
	session  *ui.Session
	listener *ui.Listener
	resync   func()
	quitKey  ui.Key

	panels []string
	plain  map[string]string
	active int

	clipOnce sync.Once
	clipErr  error

	cancel context.CancelFunc
}

func newApp(s *ui.Session, l *ui.Listener, quitKey ui.Key) *App {
	a := &App{
		session:  s,
		listener: l,
		quitKey:  quitKey,
		plain:    make(map[string]string),
		active:   -1,
	}
	if s.Root != nil {
		s.Root.Walk(func(c *layout.Container) bool {
			if c.HasClass("panel") {
				a.panels = append(a.panels, c.ID)
				a.plain[c.ID] = c.Content
			}
			return true
		})
	}
	a.bindKeys()
	return a
}

func (a *App) bindKeys() {
	a.listener.OnPress(a.quitKey, a.Stop)
	a.listener.OnPress(ui.KeyCode(tcell.KeyCtrlC), a.Stop)
	a.listener.OnPress(ui.KeyRune('c'), a.copyFrame)
	a.listener.OnPress(ui.KeyRune('r'), a.draw)
	a.listener.OnPress(ui.KeyCode(tcell.KeyTab), func() {
		a.cycle()
		a.draw()
	})
	a.listener.OnResize(func() {
		if a.resync != nil {
			a.resync()
		}
		a.draw()
	})
}

// Run draws the session and handles input until Stop is called or the
// terminal goes away.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Init(); err != nil {
		return err
	}
	defer a.session.Close()

	ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()

	a.draw()
	for in := range a.listener.Watch(ctx) {
		if !a.listener.Trigger(in) && !in.Resize {
			log.Printf("unbound key: %v", in.Key)
		}
	}
	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *App) draw() {
	a.status(fmt.Sprintf("%d units", a.countUnits()))
	a.session.Render()
	a.session.Display()
}

// countUnits returns how many units the tree lays out to, one per container.
func (a *App) countUnits() int {
	n := 0
	if a.session.Root != nil {
		a.session.Root.Walk(func(*layout.Container) bool {
			n++
			return true
		})
	}
	return n
}

// status writes msg into the status container; it shows on the next Render.
func (a *App) status(msg string) { a.session.SetContent("status", msg) }

// cycle moves the highlight to the next panel.
func (a *App) cycle() {
	if len(a.panels) == 0 {
		return
	}
	if a.active >= 0 {
		id := a.panels[a.active]
		if c := a.session.Root.Find(id); c != nil {
			c.RemoveClass(activeClass)
		}
		a.session.SetContent(id, a.plain[id])
	}
	a.active = (a.active + 1) % len(a.panels)

	id := a.panels[a.active]
	if c := a.session.Root.Find(id); c != nil {
		c.AddClass(activeClass)
	}
	a.session.SetContent(id, ui.Theme.Accent+a.plain[id]+layout.Reset)
}

// frame renders the current tree off screen.
func (a *App) frame() *layout.Grid {
	w, h := a.session.Size()
	return layout.Render(a.session.Root, a.session.Rules(), w, h)
}

func (a *App) copyFrame() {
	a.clipOnce.Do(func() { a.clipErr = clipboard.Init() })
	if a.clipErr != nil {
		log.Printf("clipboard unavailable: %v", a.clipErr)
		a.status("clipboard unavailable")
		a.session.Render()
		a.session.Display()
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(a.frame().String()))
	a.status("copied")
	a.session.Render()
	a.session.Display()
}

// dump writes the unit table of s and its frame to w.
func dump(w io.Writer, s *ui.Session, frame *layout.Grid) error {
	width, _ := frame.Size()
	const idWidth = 12

	if _, err := fmt.Fprintln(w, runewidth.Truncate(s.Title, width, "…")); err != nil {
		return err
	}
	for _, u := range s.Units() {
		id := runewidth.FillRight(runewidth.Truncate(u.ID, idWidth, "…"), idWidth)
		_, err := fmt.Fprintf(w, "%s%*s%d %3d,%-3d %3dx%-3d %-10s %-6s %-6s wrap=%t\n",
			id, u.Depth*2, "", u.Depth, u.X, u.Y, u.W, u.H,
			u.Orientation, u.HAlign, u.VAlign, u.Wrap)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, frame.String())
	return err
}
