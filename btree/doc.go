// Package btree provides a generic ordered key-value index backed by a
// balanced multiway search tree (B-tree) with a caller-supplied comparator.
//
// What:
//
//   - Tree[K, V] maps unique keys to values and keeps them ordered.
//   - Insert, Search, Contains, Len, and an InOrder sorted export.
//   - Minimum degree t is tunable via WithMinDegree (default 2): every
//     non-root node holds between t-1 and 2t-1 pairs, and a full node
//     (2t-1 pairs) is split before another insertion descends through it.
//
// Why:
//
//   - Deterministic key ordering under arbitrary comparators - the index is
//     the vertex store of the core graph package, where iteration order
//     must be reproducible.
//   - No deletion: nodes are created on split or on first insertion and
//     never removed, which keeps the invariant maintenance one-sided.
//
// Complexity:
//
//   - Insert / Search / Contains: O(t·log_t n) time, O(log_t n) stack.
//   - InOrder: O(n) time, O(n) memory.
//
// Options:
//
//   - WithMinDegree(t): branching parameter, t >= 2.
//
// Errors:
//
//   - ErrKeyAlreadyExists: duplicate key on Insert; the tree is unchanged.
//   - ErrKeyNotFound: Search miss.
//   - ErrInvalidDegree: WithMinDegree with t < 2.
//   - ErrNilComparator: New without a comparator.
//   - ErrUndefinedNode: an operation reached an uninitialized node; this is
//     an invariant violation and never occurs through the public contract.
package btree
