package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSheet is wrapped by every error caused by malformed sheet or tree
// content, as opposed to I/O errors.
var ErrSheet = errors.New("invalid style sheet")

type sheetFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	ID     string      `yaml:"id"`
	Class  string      `yaml:"class"`
	Styles []yaml.Node `yaml:"styles"`
}

// ParseSheet decodes YAML style rules:
//
//	rules:
//	  - id: header
//	    styles:
//	      - orientation: vertical
//	      - min: 3
//	      - max: 50%
//	      - margin: [1, 0, 1, 0]
//	  - class: panel
//	    styles:
//	      - wrap: true
//	      - halign: center
//
// Each style is a single-key mapping. Sizes are cell counts or percentages
// with a "%" suffix. A margin is one size for every side, two sizes for
// vertical and horizontal sides, or four sizes in left, top, right, bottom
// order.
func ParseSheet(data []byte) ([]Rule, error) {
	var f sheetFile
	if err := decodeStrict(data, &f); err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(f.Rules))
	for i, rs := range f.Rules {
		if (rs.ID == "") == (rs.Class == "") {
			return nil, fmt.Errorf("%w: rule %d: exactly one of id and class must be set", ErrSheet, i)
		}
		r := Rule{ID: rs.ID, Class: rs.Class}
		for j := range rs.Styles {
			st, err := parseStyle(&rs.Styles[j])
			if err != nil {
				return nil, fmt.Errorf("rule %d, style %d: %w", i, j, err)
			}
			r.Styles = append(r.Styles, st)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// LoadSheet reads and parses the style sheet at path.
func LoadSheet(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

type nodeSpec struct {
	ID       string     `yaml:"id"`
	Content  string     `yaml:"content"`
	Classes  []string   `yaml:"classes"`
	Children []nodeSpec `yaml:"children"`
}

func (n nodeSpec) container() *Container {
	c := NewContainer(n.ID, n.Content, n.Classes)
	for _, child := range n.Children {
		c.AddChild(child.container())
	}
	return c
}

// ParseTree decodes a YAML container tree:
//
//	id: root
//	classes: [screen]
//	children:
//	  - id: title
//	    content: hello
func ParseTree(data []byte) (*Container, error) {
	var n nodeSpec
	if err := decodeStrict(data, &n); err != nil {
		return nil, err
	}
	return n.container(), nil
}

// LoadTree reads and parses the container tree at path.
func LoadTree(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrSheet, err)
	}
	return nil
}

func parseStyle(n *yaml.Node) (Style, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, fmt.Errorf("%w: line %d: a style is a single key mapping", ErrSheet, n.Line)
	}
	key, val := n.Content[0].Value, n.Content[1]

	switch key {
	case "orientation":
		switch strings.ToLower(val.Value) {
		case "horizontal":
			return Horizontal, nil
		case "vertical":
			return Vertical, nil
		}
	case "min", "min_size":
		s, err := parseSize(val)
		return MinSize(s), err
	case "max", "max_size":
		s, err := parseSize(val)
		return MaxSize(s), err
	case "wrap":
		var wrap bool
		if err := val.Decode(&wrap); err != nil {
			return nil, fmt.Errorf("%w: line %d: wrap: %v", ErrSheet, val.Line, err)
		}
		if wrap {
			return Wrap, nil
		}
		return NoWrap, nil
	case "halign":
		if a, ok := parseAlign(val.Value, Left, Right, Center); ok {
			return HAlign(a), nil
		}
	case "valign":
		if a, ok := parseAlign(val.Value, Top, Bottom, Center); ok {
			return VAlign(a), nil
		}
	case "margin":
		return parseMargin(val)
	default:
		return nil, fmt.Errorf("%w: line %d: unknown style %q", ErrSheet, n.Line, key)
	}
	return nil, fmt.Errorf("%w: line %d: bad %s value %q", ErrSheet, val.Line, key, val.Value)
}

func parseAlign(s string, allowed ...Align) (Align, bool) {
	s = strings.ToLower(s)
	for _, a := range allowed {
		if a.String() == s {
			return a, true
		}
	}
	return 0, false
}

func parseSize(n *yaml.Node) (Size, error) {
	if n.Kind != yaml.ScalarNode {
		return Size{}, fmt.Errorf("%w: line %d: size must be a scalar", ErrSheet, n.Line)
	}
	s := strings.TrimSpace(n.Value)
	pct := strings.HasSuffix(s, "%")
	v, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil || v < 0 {
		return Size{}, fmt.Errorf("%w: line %d: bad size %q", ErrSheet, n.Line, n.Value)
	}
	if pct {
		return Percent(v), nil
	}
	return Fixed(v), nil
}

func parseMargin(n *yaml.Node) (Style, error) {
	items := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		items = n.Content
	}
	sizes := make([]Size, len(items))
	for i, item := range items {
		s, err := parseSize(item)
		if err != nil {
			return nil, err
		}
		sizes[i] = s
	}

	switch len(sizes) {
	case 1:
		return MarginAll(sizes[0]), nil
	case 2:
		return Margin{Left: sizes[1], Top: sizes[0], Right: sizes[1], Bottom: sizes[0]}, nil
	case 4:
		return Margin{Left: sizes[0], Top: sizes[1], Right: sizes[2], Bottom: sizes[3]}, nil
	}
	return nil, fmt.Errorf("%w: line %d: margin takes 1, 2 or 4 sizes, got %d", ErrSheet, n.Line, len(sizes))
}
