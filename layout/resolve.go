package layout

// Rule binds styles to every container with a matching id or class.
type Rule struct {
	ID     string
	Class  string
	Styles []Style
}

// ForID returns a rule selecting the container with the given id.
func ForID(id string, styles ...Style) Rule { return Rule{ID: id, Styles: styles} }

// ForClass returns a rule selecting every container carrying class.
func ForClass(class string, styles ...Style) Rule { return Rule{Class: class, Styles: styles} }

// Matches reports whether the rule selects c.
func (r Rule) Matches(c *Container) bool {
	return (r.ID != "" && r.ID == c.ID) || (r.Class != "" && c.HasClass(r.Class))
}

// Resolve returns the styles of every rule matching c, in rule order.
// Id and class selectors have the same weight: a later rule overrides an
// earlier one regardless of how it selected the container.
func Resolve(c *Container, rules []Rule) []Style {
	var styles []Style
	for _, r := range rules {
		if r.Matches(c) {
			styles = append(styles, r.Styles...)
		}
	}
	return styles
}
