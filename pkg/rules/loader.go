package rules

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/logging"
)

// Resolve loads the configuration document at root and every document it
// transitively includes, returning the flattened ordered rule list.
//
// A document's includes are resolved depth-first and their rules appended
// before the document's own rules. Because the engine gives earlier rules
// priority, included rules therefore outrank the including document's own
// rules when both match the same text. A document that has already
// contributed — through a repeated or circular include — is skipped
// silently; cycles terminate without error and without duplicate rules.
//
// Any newly encountered document that cannot be read or parsed aborts the
// whole load: no partial rule list is ever returned.
func Resolve(root string) ([]Rule, error) {
	l := &loader{
		visited: make(map[string]bool),
		logger:  logging.GetLogger("rules.loader"),
	}
	rules, err := l.load(root)
	if err != nil {
		return nil, err
	}
	l.logger.Debug().
		Int("rules", len(rules)).
		Int("documents", len(l.visited)).
		Str("root", root).
		Msg("Configuration resolved")
	return rules, nil
}

// loader accumulates the visited set for one Resolve call. The set is
// per-call state, so independent loads never observe each other.
type loader struct {
	visited map[string]bool
	logger  zerolog.Logger
}

func (l *loader) load(path string) ([]Rule, error) {
	identity, err := canonicalize(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot resolve config file %s", path)
	}

	if l.visited[identity] {
		l.logger.Debug().Str("path", path).Msg("Skipping already loaded document")
		return nil, nil
	}
	l.visited[identity] = true

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}

	var all []Rule

	parent := filepath.Dir(path)
	for _, inc := range doc.Include {
		// Absolute include paths stand on their own; relative ones
		// resolve against the including document's directory.
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(parent, inc)
		}
		included, err := l.load(inc)
		if err != nil {
			return nil, err
		}
		all = append(all, included...)
	}

	for i, rule := range doc.Rules {
		if rule.Keyword == "" {
			return nil, errors.Newf(errors.ErrConfigValid,
				"rule %d in %s has an empty keyword", i, path)
		}
	}
	all = append(all, doc.Rules...)

	return all, nil
}

// canonicalize returns the stable identity of a configuration document:
// its symlink-resolved absolute path.
func canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
