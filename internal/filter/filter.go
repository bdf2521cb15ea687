// Package filter decides which walked entries are listed.
//
// A Config holds independent, optional predicates. An entry is accepted
// only when every configured predicate passes; absent fields impose no
// constraint. Configs are built once with a Builder and never mutated.
package filter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/michaelscutari/sls/internal/entry"
)

// Unlimited disables the depth bound.
const Unlimited = -1

// Config is the immutable predicate set applied to every entry.
type Config struct {
	// Ext is compared case-sensitively against the extension without its
	// leading dot. Empty means no extension filter.
	Ext string

	MinSize *uint64
	MaxSize *uint64

	// Hidden includes entries whose name starts with a dot.
	Hidden bool

	Modified *DateRange

	// Include and Exclude are validated doublestar patterns matched
	// against the base name. Empty means unset.
	Include string
	Exclude string

	// MaxDepth bounds the walk; the root is depth 0. Unlimited when negative.
	MaxDepth int
}

// Match evaluates the predicates in order and stops at the first failure.
func (c *Config) Match(r entry.Record) bool {
	if !c.Hidden && strings.HasPrefix(r.Name, ".") {
		return false
	}

	if c.Ext != "" {
		ext, ok := Extension(r.Name)
		if !ok || ext != c.Ext {
			return false
		}
	}

	if c.MinSize != nil && r.Size < *c.MinSize {
		return false
	}
	if c.MaxSize != nil && r.Size > *c.MaxSize {
		return false
	}

	// Entries without a modification time pass.
	if c.Modified != nil && r.ModTime != nil && !c.Modified.Contains(*r.ModTime) {
		return false
	}

	if c.Include != "" && !globMatch(c.Include, r.Name) {
		return false
	}
	if c.Exclude != "" && globMatch(c.Exclude, r.Name) {
		return false
	}

	return true
}

// WithinDepth reports whether depth is inside the configured bound.
func (c *Config) WithinDepth(depth int) bool {
	return c.MaxDepth < 0 || depth <= c.MaxDepth
}

// Extension returns the text after the last dot of name. Names without a
// dot, or whose only dot is the leading one, have no extension.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || name == ".." {
		return "", false
	}
	return name[i+1:], true
}

func globMatch(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
