package filter

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/michaelscutari/sls/internal/units"
	"go.uber.org/zap"
)

// ErrInvalidDateRange is returned by Build when the --modified value does
// not parse.
var ErrInvalidDateRange = errors.New("invalid date range format")

// Builder assembles a Config from raw user strings.
//
// Malformed size bounds and glob patterns are dropped and leave the
// corresponding predicate unset; only a malformed date range is an error.
type Builder struct {
	cfg    Config
	logger *zap.Logger
	err    error
}

// NewBuilder returns a builder with no constraints and unlimited depth.
// A nil logger discards diagnostics.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		cfg:    Config{MaxDepth: Unlimited},
		logger: logger,
	}
}

// WithExtension sets the extension filter.
func (b *Builder) WithExtension(ext string) *Builder {
	b.cfg.Ext = ext
	return b
}

// WithMinSize sets the inclusive lower size bound.
func (b *Builder) WithMinSize(s string) *Builder {
	b.cfg.MinSize = b.parseBound("min-size", s)
	return b
}

// WithMaxSize sets the inclusive upper size bound.
func (b *Builder) WithMaxSize(s string) *Builder {
	b.cfg.MaxSize = b.parseBound("max-size", s)
	return b
}

// WithHidden toggles dotfile visibility.
func (b *Builder) WithHidden(hidden bool) *Builder {
	b.cfg.Hidden = hidden
	return b
}

// WithModified sets the modification date range.
func (b *Builder) WithModified(s string) *Builder {
	if s == "" {
		b.cfg.Modified = nil
		return b
	}
	r, ok := ParseDateRange(s)
	if !ok {
		b.err = fmt.Errorf("%w for --modified: expected YYYY-MM-DD..YYYY-MM-DD (got %q)", ErrInvalidDateRange, s)
		return b
	}
	b.cfg.Modified = &r
	return b
}

// WithInclude sets the glob a base name must match.
func (b *Builder) WithInclude(pattern string) *Builder {
	b.cfg.Include = b.checkPattern("include", pattern)
	return b
}

// WithExclude sets the glob that rejects a base name.
func (b *Builder) WithExclude(pattern string) *Builder {
	b.cfg.Exclude = b.checkPattern("exclude", pattern)
	return b
}

// WithMaxDepth bounds the walk. Negative means unlimited.
func (b *Builder) WithMaxDepth(depth int) *Builder {
	if depth < 0 {
		depth = Unlimited
	}
	b.cfg.MaxDepth = depth
	return b
}

// Build returns the assembled Config, or the first fatal error.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	cfg := b.cfg
	return &cfg, nil
}

func (b *Builder) parseBound(flag, s string) *uint64 {
	if s == "" {
		return nil
	}
	n, ok := units.ParseSize(s)
	if !ok {
		// TODO: decide with users whether this should fail like --modified does.
		b.logger.Debug("Ignoring unparseable size bound", zap.String("flag", flag), zap.String("value", s))
		return nil
	}
	return &n
}

func (b *Builder) checkPattern(flag, pattern string) string {
	if pattern == "" {
		return ""
	}
	if !doublestar.ValidatePattern(pattern) {
		b.logger.Debug("Ignoring invalid glob pattern", zap.String("flag", flag), zap.String("pattern", pattern))
		return ""
	}
	return pattern
}
