package btree

// Insert stores value under key.
// Returns ErrKeyAlreadyExists if key is present anywhere in the tree; a
// failed insert leaves the tree unchanged.
//
// The insertion descends from the root choosing the child whose key range
// contains key. A full child is split before the descent continues; a full
// root is split first, which grows the tree by one level.
// Complexity: O(t·log_t n)
func (tr *Tree[K, V]) Insert(key K, value V) error {
	// 1. Duplicate check up front, so a rejected key cannot trigger
	//    structural splits on its way down.
	if tr.Contains(key) {
		return ErrKeyAlreadyExists
	}

	pair := KeyValue[K, V]{Key: key, Value: value}

	// 2. First insertion into an empty tree creates the root leaf.
	if tr.root == nil {
		tr.root = newLeaf([]KeyValue[K, V]{pair})
		tr.size++

		return nil
	}

	// 3. A full root splits before anything descends through it; the two
	//    halves hang off a fresh root, increasing the height by one.
	full, err := tr.root.isFull(tr.t)
	if err != nil {
		return err
	}
	if full {
		old := tr.root
		s, splitErr := old.splitAt(tr.t)
		if splitErr != nil {
			return splitErr
		}
		tr.root = newInternal(
			[]KeyValue[K, V]{s.median},
			[]*node[K, V]{old, s.sibling},
		)
	}

	// 4. Root is now guaranteed non-full; descend.
	if err = tr.insertNonFull(tr.root, pair); err != nil {
		return err
	}
	tr.size++

	return nil
}

// insertNonFull places pair into the subtree rooted at n, which must not
// be full. Full children are split before the recursion enters them.
func (tr *Tree[K, V]) insertNonFull(n *node[K, V], pair KeyValue[K, V]) error {
	switch n.kind {
	case kindLeaf:
		idx, found := n.locate(pair.Key, tr.cmp)
		if found {
			return ErrKeyAlreadyExists
		}
		n.pairs = append(n.pairs, KeyValue[K, V]{})
		copy(n.pairs[idx+1:], n.pairs[idx:])
		n.pairs[idx] = pair

		return nil

	case kindInternal:
		idx, found := n.locate(pair.Key, tr.cmp)
		if found {
			return ErrKeyAlreadyExists
		}
		child := n.children[idx]

		// Split a full child before descending through it.
		full, err := child.isFull(tr.t)
		if err != nil {
			return err
		}
		if full {
			s, splitErr := child.splitAt(tr.t)
			if splitErr != nil {
				return splitErr
			}
			if err = n.insertPromoted(s, tr.cmp); err != nil {
				return err
			}
			// The promoted median decides which half the key belongs to.
			switch d := tr.cmp(pair.Key, s.median.Key); {
			case d == 0:
				return ErrKeyAlreadyExists
			case d > 0:
				child = s.sibling
			}
		}

		return tr.insertNonFull(child, pair)

	default:
		return ErrUndefinedNode
	}
}

// Search returns the value stored under key, or ErrKeyNotFound.
// Complexity: O(t·log_t n)
func (tr *Tree[K, V]) Search(key K) (V, error) {
	var zero V
	n := tr.root
	for n != nil {
		idx, found := n.locate(key, tr.cmp)
		if found {
			return n.pairs[idx].Value, nil
		}
		switch n.kind {
		case kindLeaf:
			return zero, ErrKeyNotFound
		case kindInternal:
			n = n.children[idx]
		default:
			return zero, ErrUndefinedNode
		}
	}

	return zero, ErrKeyNotFound
}

// Contains reports whether key is present. It never fails: lookups that
// cannot resolve report false.
// Complexity: O(t·log_t n)
func (tr *Tree[K, V]) Contains(key K) bool {
	_, err := tr.Search(key)

	return err == nil
}

// InOrder exports every key-value pair sorted by key, by recursively
// interleaving each internal node's children with its own pairs.
// An empty tree exports an empty slice.
// Complexity: O(n)
func (tr *Tree[K, V]) InOrder() ([]KeyValue[K, V], error) {
	if tr.root == nil {
		return []KeyValue[K, V]{}, nil
	}

	return tr.root.appendInOrder(make([]KeyValue[K, V], 0, tr.size))
}
