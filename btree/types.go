// Package btree defines the Tree type, its comparator and option plumbing,
// and the sentinel errors shared by all index operations.
package btree

import (
	"cmp"
	"errors"
)

// DefaultMinDegree is the branching parameter used when WithMinDegree is not supplied.
const DefaultMinDegree = 2

// Sentinel errors for ordered-index operations.
var (
	// ErrKeyAlreadyExists indicates an Insert with a key already present in the tree.
	ErrKeyAlreadyExists = errors.New("btree: key already exists")

	// ErrKeyNotFound indicates a Search for a key absent from the tree.
	ErrKeyNotFound = errors.New("btree: key not found")

	// ErrInvalidDegree indicates WithMinDegree was given a value below 2.
	ErrInvalidDegree = errors.New("btree: minimum degree must be at least 2")

	// ErrNilComparator indicates New was called with a nil Comparator.
	ErrNilComparator = errors.New("btree: comparator must not be nil")

	// ErrUndefinedNode indicates an operation reached a node in the
	// uninitialized state. Unreachable through the public contract.
	ErrUndefinedNode = errors.New("btree: operation on undefined node")
)

// Comparator defines a total order over keys: negative if a < b,
// zero if a == b, positive if a > b.
type Comparator[K any] func(a, b K) int

// Ordered returns the canonical Comparator for any cmp.Ordered key type.
func Ordered[K cmp.Ordered]() Comparator[K] {
	return func(a, b K) int { return cmp.Compare(a, b) }
}

// KeyValue is a single key and its value. Keys are unique within a Tree.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// Option configures a Tree before creation.
type Option func(*config)

// config holds construction-time parameters for a Tree.
type config struct {
	minDegree int
	err       error // first invalid option, surfaced by New
}

// WithMinDegree sets the tree's minimum degree t. Values below 2 are
// rejected with ErrInvalidDegree when New is invoked.
func WithMinDegree(t int) Option {
	return func(c *config) {
		if t < 2 {
			c.err = ErrInvalidDegree

			return
		}
		c.minDegree = t
	}
}

// Tree is a balanced multiway search tree mapping unique keys to values.
// The zero value is not usable; construct with New.
//
// The tree value owns every node exclusively: no node is ever aliased
// outside the Tree, and nodes are never deleted (no removal operation).
type Tree[K, V any] struct {
	cmp  Comparator[K]
	t    int         // minimum degree
	root *node[K, V] // nil until the first insertion
	size int         // number of stored pairs
}

// New creates an empty Tree ordered by c.
// Returns ErrNilComparator if c is nil, or the error recorded by an
// invalid Option.
// Complexity: O(1)
func New[K, V any](c Comparator[K], opts ...Option) (*Tree[K, V], error) {
	// 1. Comparator is mandatory: key ordering is caller-defined.
	if c == nil {
		return nil, ErrNilComparator
	}

	// 2. Apply options over defaults; the first invalid option wins.
	cfg := config{minDegree: DefaultMinDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Tree[K, V]{cmp: c, t: cfg.minDegree}, nil
}

// Len reports the number of key-value pairs stored in the tree.
// Complexity: O(1)
func (tr *Tree[K, V]) Len() int { return tr.size }

// MinDegree reports the tree's branching parameter t.
func (tr *Tree[K, V]) MinDegree() int { return tr.t }
