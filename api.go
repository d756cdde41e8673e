package tnetstr

import "fmt"

const (
	// DefaultMaxLength is the largest length prefix a coder accepts unless
	// configured otherwise. Prefixes are rejected before they are used to
	// index or allocate anything.
	DefaultMaxLength = 999999999

	// DefaultMaxDepth bounds list/dict nesting on both decode and encode.
	// The wire format itself permits arbitrary nesting, so a ceiling is
	// needed to keep stack usage bounded on hostile input.
	DefaultMaxDepth = 256
)

// Options tune a Coder. Only Model is required.
type Options[V any] struct {
	// Model maps wire tags to/from the host value representation. Required.
	Model Model[V]

	// MaxLength is the largest accepted length prefix, in bytes.
	// 0 => DefaultMaxLength.
	MaxLength int

	// MaxDepth is the deepest accepted list/dict nesting. 0 => DefaultMaxDepth.
	MaxDepth int

	// AcceptLegacyFloats makes Decode treat a '#' payload containing '.',
	// 'e' or 'E' as a float. Early tnetstring generations wrote both
	// numeric types under '#'; this coder always writes floats under the
	// distinct '^' tag regardless.
	AcceptLegacyFloats bool
}

// Coder encodes and decodes tnetstring frames through a Model. It keeps no
// state between calls and is safe for concurrent use.
type Coder[V any] struct {
	model        Model[V]
	maxLength    int
	maxDepth     int
	legacyFloats bool
}

func New[V any](opts Options[V]) (*Coder[V], error) {
	if opts.Model == nil {
		return nil, fmt.Errorf("tnetstr: model is required")
	}
	if opts.MaxLength < 0 {
		return nil, fmt.Errorf("tnetstr: negative MaxLength")
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("tnetstr: negative MaxDepth")
	}
	return &Coder[V]{
		model:        opts.Model,
		maxLength:    coalesce(opts.MaxLength, DefaultMaxLength),
		maxDepth:     coalesce(opts.MaxDepth, DefaultMaxDepth),
		legacyFloats: opts.AcceptLegacyFloats,
	}, nil
}

// MustNew is New that panics on error. Handy for package-level coders.
func MustNew[V any](opts Options[V]) *Coder[V] {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

// MaxLength reports the coder's length-prefix ceiling.
func (c *Coder[V]) MaxLength() int { return c.maxLength }

// MaxDepth reports the coder's nesting ceiling.
func (c *Coder[V]) MaxDepth() int { return c.maxDepth }
