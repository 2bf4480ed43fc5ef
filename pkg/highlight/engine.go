// Package highlight compiles an ordered rule list into a single matching
// engine and renders lines with ANSI color escapes.
package highlight

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/hilite/pkg/color"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/rules"
)

// Engine holds the compiled composite pattern and the per-rule color
// escapes, index-aligned with rule order. An Engine is immutable after
// New and safe to share across all rendering calls.
type Engine struct {
	re *regexp.Regexp

	// prefixes[i] is the precomputed ANSI escape for rule i.
	prefixes []string

	// groups[i] is the submatch index of rule i's named group. Resolved
	// by name because user regex fragments may carry capture groups of
	// their own, shifting positional indexes.
	groups []int
}

// New compiles an ordered rule list into an Engine.
//
// Every rule contributes one alternative to a single composite pattern:
// literal keywords are quoted to match verbatim, regex keywords are
// inserted as authored. Rule order is match priority — at any shared
// start position the earliest rule wins, even when a later rule would
// match a longer span. This relies on regexp.Compile's leftmost-first
// alternation semantics and is a documented contract of the engine.
//
// ignoreCase applies uniformly to all rules. Anchors in user patterns
// bind to the current line, and dot does not cross line terminators.
//
// A single invalid pattern fails the whole compile; there is no partial
// engine.
func New(ruleList []rules.Rule, ignoreCase bool) (*Engine, error) {
	logger := logging.GetLogger("highlight.engine")

	if len(ruleList) == 0 {
		logger.Debug().Msg("No rules, engine renders lines unchanged")
		return &Engine{}, nil
	}

	patterns := make([]string, 0, len(ruleList))
	prefixes := make([]string, 0, len(ruleList))
	for i, rule := range ruleList {
		pat := rule.Keyword
		if !rule.IsRegex {
			pat = regexp.QuoteMeta(pat)
		}
		patterns = append(patterns, fmt.Sprintf("(?P<r%d>%s)", i, pat))
		prefixes = append(prefixes, rule.Color.ANSI())
	}

	flags := "(?m)"
	if ignoreCase {
		flags = "(?mi)"
	}

	re, err := regexp.Compile(flags + strings.Join(patterns, "|"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPatternCompile, "invalid highlight pattern")
	}

	groups := make([]int, len(ruleList))
	for i := range ruleList {
		groups[i] = re.SubexpIndex(fmt.Sprintf("r%d", i))
	}

	logger.Debug().
		Int("rules", len(ruleList)).
		Bool("ignoreCase", ignoreCase).
		Msg("Engine compiled")

	return &Engine{re: re, prefixes: prefixes, groups: groups}, nil
}

// RenderLine writes the colorized rendering of line into out, replacing
// its previous contents. Matches are found left to right and never
// overlap: once a span is consumed, scanning resumes after its end.
// A line with no matches is written byte-identical.
//
// The same buffer may be passed across calls to reuse its allocation;
// the result is identical either way.
func (e *Engine) RenderLine(line string, out *bytes.Buffer) {
	out.Reset()

	if e.re == nil {
		out.WriteString(line)
		return
	}

	last := 0
	for _, m := range e.re.FindAllStringSubmatchIndex(line, -1) {
		out.WriteString(line[last:m[0]])

		// The one rule group that participated in this match wins.
		for i, g := range e.groups {
			if m[2*g] >= 0 {
				out.WriteString(e.prefixes[i])
				out.WriteString(line[m[0]:m[1]])
				out.WriteString(color.Reset)
				break
			}
		}

		last = m[1]
	}
	out.WriteString(line[last:])
}

// Render returns the colorized rendering of line. It is a convenience
// wrapper over RenderLine with a private buffer.
func (e *Engine) Render(line string) string {
	var buf bytes.Buffer
	e.RenderLine(line, &buf)
	return buf.String()
}
