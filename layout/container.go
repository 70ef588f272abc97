package layout

import "slices"

// Container is a node of the layout tree. A container owns its children;
// there are no parent references.
//
// IDs are expected to be unique but this is not enforced. Every lookup by
// id walks the tree in pre-order and stops at the first match.
type Container struct {
	ID       string
	Content  string
	Classes  []string
	Children []*Container
}

// NewContainer creates a container with the given classes and children.
func NewContainer(id, content string, classes []string, children ...*Container) *Container {
	return &Container{
		ID:       id,
		Content:  content,
		Classes:  slices.Clone(classes),
		Children: children,
	}
}

func (c *Container) AddChild(child *Container) { c.Children = append(c.Children, child) }

// PopChild removes the last child, if any.
func (c *Container) PopChild() {
	if len(c.Children) > 0 {
		c.Children = c.Children[:len(c.Children)-1]
	}
}

func (c *Container) ClearChildren() { c.Children = nil }

// RemoveChild removes the first direct child with the given id and reports
// whether one was found.
func (c *Container) RemoveChild(id string) bool {
	i := slices.IndexFunc(c.Children, func(ch *Container) bool { return ch.ID == id })
	if i < 0 {
		return false
	}
	c.Children = slices.Delete(c.Children, i, i+1)
	return true
}

func (c *Container) AddClass(class string) { c.Classes = append(c.Classes, class) }

// PopClass removes the last class, if any.
func (c *Container) PopClass() {
	if len(c.Classes) > 0 {
		c.Classes = c.Classes[:len(c.Classes)-1]
	}
}

func (c *Container) ClearClasses() { c.Classes = nil }

// RemoveClass removes every occurrence of class.
func (c *Container) RemoveClass(class string) {
	c.Classes = slices.DeleteFunc(c.Classes, func(s string) bool { return s == class })
}

func (c *Container) HasClass(class string) bool { return slices.Contains(c.Classes, class) }

// Walk calls fn for c and its descendants in pre-order until fn returns
// false.
func (c *Container) Walk(fn func(*Container) bool) bool {
	if !fn(c) {
		return false
	}
	for _, child := range c.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first container in pre-order with the given id.
func (c *Container) Find(id string) *Container {
	var found *Container
	c.Walk(func(n *Container) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Attach appends child to the first container with id parentID.
func (c *Container) Attach(parentID string, child *Container) bool {
	p := c.Find(parentID)
	if p == nil {
		return false
	}
	p.AddChild(child)
	return true
}

// SetContent replaces the content of the first container with the given id.
func (c *Container) SetContent(id, content string) bool {
	n := c.Find(id)
	if n == nil {
		return false
	}
	n.Content = content
	return true
}

// Remove detaches the first descendant with the given id. The receiver
// itself can't be removed.
func (c *Container) Remove(id string) bool {
	removed := false
	c.Walk(func(n *Container) bool {
		if n.RemoveChild(id) {
			removed = true
			return false
		}
		return true
	})
	return removed
}
