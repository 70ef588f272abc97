package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(cs []*Container) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func sampleTree() *Container {
	return NewContainer("root", "", nil,
		NewContainer("a", "first", nil,
			NewContainer("dup", "nested", nil),
		),
		NewContainer("dup", "second", nil),
		NewContainer("b", "", nil),
	)
}

func TestContainer_Find(t *testing.T) {
	root := sampleTree()

	if got := root.Find("root"); got != root {
		t.Errorf("Find(root) = %v, want the receiver", got)
	}
	if got := root.Find("dup"); got == nil || got.Content != "nested" {
		t.Errorf("Find(dup) = %+v, want the first match in pre-order", got)
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %+v, want nil", got)
	}
}

func TestContainer_Walk(t *testing.T) {
	root := sampleTree()

	var seen []string
	root.Walk(func(c *Container) bool {
		seen = append(seen, c.ID)
		return c.ID != "dup"
	})
	if diff := cmp.Diff([]string{"root", "a", "dup"}, seen); diff != "" {
		t.Errorf("Walk() order mismatch (-want +got):\n%s", diff)
	}
}

func TestContainer_Attach(t *testing.T) {
	root := sampleTree()

	if !root.Attach("b", NewContainer("c", "", nil)) {
		t.Fatal("Attach(b) = false")
	}
	if diff := cmp.Diff([]string{"c"}, ids(root.Find("b").Children)); diff != "" {
		t.Errorf("children of b mismatch (-want +got):\n%s", diff)
	}

	if !root.Attach("dup", NewContainer("d", "", nil)) {
		t.Fatal("Attach(dup) = false")
	}
	if got := len(root.Children[1].Children); got != 0 {
		t.Errorf("second dup got %d children, want 0", got)
	}
	if got := ids(root.Children[0].Children[0].Children); !cmp.Equal(got, []string{"d"}) {
		t.Errorf("first dup children = %v, want [d]", got)
	}

	if root.Attach("missing", NewContainer("e", "", nil)) {
		t.Error("Attach(missing) = true, want false")
	}
}

func TestContainer_SetContent(t *testing.T) {
	root := sampleTree()

	if !root.SetContent("dup", "changed") {
		t.Fatal("SetContent(dup) = false")
	}
	if root.Children[0].Children[0].Content != "changed" || root.Children[1].Content != "second" {
		t.Error("SetContent() did not stop at the first match")
	}
	if root.SetContent("missing", "x") {
		t.Error("SetContent(missing) = true, want false")
	}
}

func TestContainer_Remove(t *testing.T) {
	root := sampleTree()

	if !root.Remove("dup") {
		t.Fatal("Remove(dup) = false")
	}
	if got := len(root.Children[0].Children); got != 0 {
		t.Errorf("a has %d children, want 0", got)
	}
	if diff := cmp.Diff([]string{"a", "dup", "b"}, ids(root.Children)); diff != "" {
		t.Errorf("root children mismatch (-want +got):\n%s", diff)
	}

	if root.Remove("root") {
		t.Error("Remove(root) = true, want false")
	}
	if root.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
}

func TestContainer_Children(t *testing.T) {
	c := NewContainer("p", "", nil)
	c.AddChild(NewContainer("x", "", nil))
	c.AddChild(NewContainer("y", "", nil))
	c.AddChild(NewContainer("z", "", nil))

	c.PopChild()
	if diff := cmp.Diff([]string{"x", "y"}, ids(c.Children)); diff != "" {
		t.Errorf("after PopChild (-want +got):\n%s", diff)
	}
	if !c.RemoveChild("x") || c.RemoveChild("x") {
		t.Error("RemoveChild(x) should succeed exactly once")
	}
	c.ClearChildren()
	c.PopChild()
	if len(c.Children) != 0 {
		t.Errorf("children = %v, want none", ids(c.Children))
	}
}

func TestContainer_Classes(t *testing.T) {
	classes := []string{"a", "b"}
	c := NewContainer("p", "", classes)
	classes[0] = "changed"
	if !c.HasClass("a") {
		t.Error("NewContainer() must copy the class list")
	}

	c.AddClass("c")
	c.AddClass("a")
	c.RemoveClass("a")
	if diff := cmp.Diff([]string{"b", "c"}, c.Classes); diff != "" {
		t.Errorf("after RemoveClass (-want +got):\n%s", diff)
	}
	c.PopClass()
	if c.HasClass("c") {
		t.Error("PopClass() did not remove the last class")
	}
	c.ClearClasses()
	c.PopClass()
	if len(c.Classes) != 0 {
		t.Errorf("classes = %v, want none", c.Classes)
	}
}
