package ui

import (
	"log"

	"github.com/cansyan/boxes/layout"
)

// Session ties a container tree and its style rules to a Backend.
//
// Rules are kept in the order they were attached; a later rule overrides
// an earlier one for the attributes both set.
type Session struct {
	Title string
	Root  *layout.Container

	rules   []layout.Rule
	backend Backend
}

func NewSession(title string, root *layout.Container, b Backend) *Session {
	return &Session{Title: title, Root: root, backend: b}
}

func (s *Session) AttachStyleToID(id string, styles ...layout.Style) {
	s.rules = append(s.rules, layout.ForID(id, styles...))
}

func (s *Session) AttachStyleToClass(class string, styles ...layout.Style) {
	s.rules = append(s.rules, layout.ForClass(class, styles...))
}

// AddRules appends rules, as loaded from a style sheet.
func (s *Session) AddRules(rules ...layout.Rule) { s.rules = append(s.rules, rules...) }

func (s *Session) Rules() []layout.Rule { return s.rules }

// AttachContainer appends c to the children of the container with id
// parentID and reports whether that container exists.
func (s *Session) AttachContainer(parentID string, c *layout.Container) bool {
	if !s.hasRoot("attach " + c.ID) {
		return false
	}
	if !s.Root.Attach(parentID, c) {
		log.Printf("attach %q: no container %q", c.ID, parentID)
		return false
	}
	return true
}

func (s *Session) SetContent(id, content string) bool {
	return s.hasRoot("set content of "+id) && s.Root.SetContent(id, content)
}

func (s *Session) RemoveContainer(id string) bool {
	return s.hasRoot("remove "+id) && s.Root.Remove(id)
}

// hasRoot reports whether there is a tree to edit, logging op otherwise.
func (s *Session) hasRoot(op string) bool {
	if s.Root == nil {
		log.Printf("%s: session %q has no root container", op, s.Title)
		return false
	}
	return true
}

func (s *Session) Init() error {
	log.Printf("session %q: init", s.Title)
	return s.backend.Init()
}

// Render lays out the tree with every attached rule.
func (s *Session) Render() { s.backend.Render(s.Root, s.rules) }

func (s *Session) Display() { s.backend.Display() }

func (s *Session) Close() {
	s.backend.Close()
	log.Printf("session %q: closed", s.Title)
}

// Units returns the units of the last Render.
func (s *Session) Units() []layout.Unit { return s.backend.Units() }

func (s *Session) Size() (int, int) { return s.backend.Size() }
