package ui

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Action is the phase of a key input.
type Action int

const (
	Press Action = iota
	Hold
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Hold:
		return "hold"
	case Release:
		return "release"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Key identifies a keyboard key. Rune is only set when Code is
// tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Rune rune
}

func KeyRune(r rune) Key      { return Key{Code: tcell.KeyRune, Rune: r} }
func KeyCode(k tcell.Key) Key { return Key{Code: k} }

func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k.Code)
}

// Input is a single keyboard input, or a terminal resize when Resize is
// set.
type Input struct {
	Key    Key
	Action Action
	Mod    tcell.ModMask
	Resize bool
}

type binding struct {
	key    Key
	action Action
}

// Listener maps key inputs to handlers. Handlers run on the goroutine
// calling Trigger, never on the one watching the screen.
type Listener struct {
	screen tcell.Screen

	mu       sync.Mutex
	handlers map[binding]func()
	onResize func()
}

func NewListener(s tcell.Screen) *Listener {
	return &Listener{screen: s, handlers: make(map[binding]func())}
}

func (l *Listener) OnPress(k Key, fn func())   { l.on(k, Press, fn) }
func (l *Listener) OnHold(k Key, fn func())    { l.on(k, Hold, fn) }
func (l *Listener) OnRelease(k Key, fn func()) { l.on(k, Release, fn) }

// OnResize sets the handler for terminal resizes.
func (l *Listener) OnResize(fn func()) {
	l.mu.Lock()
	l.onResize = fn
	l.mu.Unlock()
}

// on replaces any handler already bound to k and action.
func (l *Listener) on(k Key, action Action, fn func()) {
	l.mu.Lock()
	l.handlers[binding{k, action}] = fn
	l.mu.Unlock()
}

// Trigger runs the handler bound to in and reports whether there was one.
func (l *Listener) Trigger(in Input) bool {
	l.mu.Lock()
	fn := l.handlers[binding{in.Key, in.Action}]
	if in.Resize {
		fn = l.onResize
	}
	l.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Watch polls the screen for events in a new goroutine and sends the
// inputs on the returned channel. The channel is closed once ctx is done
// or the screen is finalized.
//
// Terminals only report key presses, so every key input is a Press.
func (l *Listener) Watch(ctx context.Context) <-chan Input {
	ch := make(chan Input)
	go func() {
		defer close(ch)
		// PollEvent blocks; wake it up on cancellation.
		stop := context.AfterFunc(ctx, func() {
			if err := l.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				log.Printf("listener: wake up poll: %v", err)
			}
		})
		defer stop()

		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				log.Print("listener: screen finalized")
				return
			}
			if ctx.Err() != nil {
				log.Print("listener: stopped")
				return
			}

			var in Input
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in = inputOf(ev)
			case *tcell.EventResize:
				in = Input{Resize: true}
			default:
				continue
			}

			select {
			case ch <- in:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func inputOf(ev *tcell.EventKey) Input {
	k := KeyCode(ev.Key())
	if ev.Key() == tcell.KeyRune {
		k = KeyRune(ev.Rune())
	}
	return Input{Key: k, Action: Press, Mod: ev.Modifiers()}
}
