package rules

import (
	"github.com/arthur-debert/hilite/pkg/color"
)

// Rule binds a keyword or pattern to a color. Rules are ordered: the
// position of a rule in the resolved list is its match priority, earliest
// first.
type Rule struct {
	// Keyword is the text to match: a literal substring, or a regular
	// expression when IsRegex is set.
	Keyword string `yaml:"keyword"`

	// Color is the foreground color applied to matched spans.
	Color color.Color `yaml:"color"`

	// IsRegex marks Keyword as a user-authored regular expression
	// rather than literal text.
	IsRegex bool `yaml:"is_regex"`
}

// document is one configuration source, as parsed from YAML.
type document struct {
	// Include lists further configuration documents, resolved relative
	// to this document's directory, in order.
	Include []string `yaml:"include"`

	// Rules are this document's own rules, appended after everything
	// its includes contribute.
	Rules []Rule `yaml:"rules"`
}
