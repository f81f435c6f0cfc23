package btree

// nodeKind discriminates the variants a node can be in.
// The zero value is kindUndefined so that a node which was never properly
// initialized is detectable; every operation on such a node fails with
// ErrUndefinedNode instead of corrupting the tree.
type nodeKind uint8

const (
	kindUndefined nodeKind = iota // transient/invalid state
	kindLeaf                      // ordered pairs, no children
	kindInternal                  // ordered pairs plus len(pairs)+1 children
)

// node is a single B-tree node. An internal node always holds exactly one
// more child than pairs; a leaf holds pairs only.
type node[K, V any] struct {
	kind     nodeKind
	pairs    []KeyValue[K, V]
	children []*node[K, V]
}

// newLeaf builds a leaf node around the given pairs.
func newLeaf[K, V any](pairs []KeyValue[K, V]) *node[K, V] {
	return &node[K, V]{kind: kindLeaf, pairs: pairs}
}

// newInternal builds an internal node around the given pairs and children.
func newInternal[K, V any](pairs []KeyValue[K, V], children []*node[K, V]) *node[K, V] {
	return &node[K, V]{kind: kindInternal, pairs: pairs, children: children}
}

// split holds the outcome of splitting a full node: the promoted median
// pair and the freshly created right sibling.
type split[K, V any] struct {
	median  KeyValue[K, V]
	sibling *node[K, V]
}

// locate binary-searches the node's pairs for key using c.
// Returns the pair index and true on an exact hit, or the insertion
// position (equally: the child index to descend into) and false.
func (n *node[K, V]) locate(key K, c Comparator[K]) (int, bool) {
	lo, hi := 0, len(n.pairs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch d := c(n.pairs[mid].Key, key); {
		case d == 0:
			return mid, true
		case d < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return lo, false
}

// isFull reports whether the node holds the maximum 2t-1 pairs and must be
// split before another insertion descends through it.
func (n *node[K, V]) isFull(t int) (bool, error) {
	switch n.kind {
	case kindInternal, kindLeaf:
		return len(n.pairs) >= 2*t-1, nil
	default:
		return false, ErrUndefinedNode
	}
}

// splitAt divides a full node around its median for minimum degree t.
//
// Internal node: the pairs are cut at index t-1 - the median pair is
// removed and promoted - and the children are cut at index t, so the new
// sibling receives the upper t-1 pairs with their t children.
// Leaf node: the pairs are cut at index t, with the pair at index t-1
// removed and promoted.
// Either way the receiver keeps the lower half and the returned sibling
// holds the upper half, preserving the branching invariant.
func (n *node[K, V]) splitAt(t int) (split[K, V], error) {
	switch n.kind {
	case kindInternal:
		median := n.pairs[t-1]
		siblingPairs := append([]KeyValue[K, V](nil), n.pairs[t:]...)
		siblingChildren := append([]*node[K, V](nil), n.children[t:]...)
		n.pairs = n.pairs[:t-1]
		n.children = n.children[:t]

		return split[K, V]{median: median, sibling: newInternal(siblingPairs, siblingChildren)}, nil

	case kindLeaf:
		median := n.pairs[t-1]
		siblingPairs := append([]KeyValue[K, V](nil), n.pairs[t:]...)
		n.pairs = n.pairs[:t-1]

		return split[K, V]{median: median, sibling: newLeaf(siblingPairs)}, nil

	default:
		return split[K, V]{}, ErrUndefinedNode
	}
}

// insertPromoted places a promoted median pair and its right sibling into
// an internal node, keeping pairs and children aligned and ordered.
// Returns ErrKeyAlreadyExists if the median's key is already present and
// ErrUndefinedNode if the receiver is not an internal node.
func (n *node[K, V]) insertPromoted(s split[K, V], c Comparator[K]) error {
	if n.kind != kindInternal {
		return ErrUndefinedNode
	}
	idx, found := n.locate(s.median.Key, c)
	if found {
		return ErrKeyAlreadyExists
	}

	// Shift pairs right of idx and place the median.
	n.pairs = append(n.pairs, KeyValue[K, V]{})
	copy(n.pairs[idx+1:], n.pairs[idx:])
	n.pairs[idx] = s.median

	// The sibling covers keys above the median: child slot idx+1.
	n.children = append(n.children, nil)
	copy(n.children[idx+2:], n.children[idx+1:])
	n.children[idx+1] = s.sibling

	return nil
}

// appendInOrder walks the subtree rooted at n in key order, appending each
// pair to out. Internal nodes interleave children with their own pairs:
// child 0, pair 0, child 1, pair 1, ..., child len(pairs).
func (n *node[K, V]) appendInOrder(out []KeyValue[K, V]) ([]KeyValue[K, V], error) {
	var err error
	switch n.kind {
	case kindLeaf:
		out = append(out, n.pairs...)
	case kindInternal:
		for i, pair := range n.pairs {
			if out, err = n.children[i].appendInOrder(out); err != nil {
				return nil, err
			}
			out = append(out, pair)
		}
		// Trailing child holds keys above the last pair.
		if out, err = n.children[len(n.pairs)].appendInOrder(out); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUndefinedNode
	}

	return out, nil
}
