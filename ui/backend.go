// Package ui puts layout trees on a terminal. It is built on top of tcell
// and keeps the drawing, the key listener and the session state apart.
package ui

import (
	"fmt"
	"log"

	"github.com/cansyan/boxes/layout"
	"github.com/gdamore/tcell/v2"
)

// Backend is a surface a Session lays out and draws on.
type Backend interface {
	Init() error
	Close()
	// Render lays out root; nothing is visible before Display.
	Render(root *layout.Container, rules []layout.Rule)
	Display()
	Size() (w, h int)
	// Units returns the units of the last Render.
	Units() []layout.Unit
}

// Terminal is the tcell Backend.
type Terminal struct {
	*Drawer
	Listener *Listener
	screen   tcell.Screen
}

// NewTerminal creates a Terminal on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalScreen(s), nil
}

// NewTerminalScreen creates a Terminal on s, which is initialized by Init.
func NewTerminalScreen(s tcell.Screen) *Terminal {
	return &Terminal{
		Drawer:   NewDrawer(s, Theme.Style()),
		Listener: NewListener(s),
		screen:   s,
	}
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.SetStyle(t.style)
	t.screen.HideCursor()
	w, h := t.screen.Size()
	log.Printf("screen initialized: %dx%d", w, h)
	return nil
}

func (t *Terminal) Close() {
	t.screen.Fini()
	log.Print("screen finalized")
}

func (t *Terminal) Size() (int, int) { return t.screen.Size() }

// Sync redraws the whole screen, after a resize for instance.
func (t *Terminal) Sync() { t.screen.Sync() }

// Buffer is a Backend drawing on an in-memory layout.Grid of fixed size.
type Buffer struct {
	w, h  int
	grid  *layout.Grid
	units []layout.Unit
}

func NewBuffer(w, h int) *Buffer {
	return &Buffer{w: w, h: h, grid: layout.NewGrid(w, h)}
}

func (b *Buffer) Init() error { return nil }
func (b *Buffer) Close()      {}

func (b *Buffer) Render(root *layout.Container, rules []layout.Rule) {
	b.grid = layout.NewGrid(b.w, b.h)
	b.units = layout.Distribute(root, rules, b.w, b.h)
}

func (b *Buffer) Display() {
	for _, u := range b.units {
		b.grid.Paint(layout.Place(u))
	}
}

func (b *Buffer) Size() (int, int)     { return b.w, b.h }
func (b *Buffer) Units() []layout.Unit { return b.units }
func (b *Buffer) Grid() *layout.Grid   { return b.grid }
