package primitives

import "iter"

// EnumerateWords lazily produces every word spelled by a path from node to a
// terminal descendant, where the character at relative position k must be in
// constraints[k]. The number of constraint sets determines the length of the
// produced words.
//
// Characters are tried in ascending order at every position, so the sequence
// is deterministic for a given trie and constraint sets. Branches absent from
// either the trie or the allowed set are never explored.
//
// The sequence is finite and supports early termination; each call constructs
// a fresh, single-use sequence.
func EnumerateWords(node *TrieNode, constraints []*CharSet) iter.Seq[string] {
	return func(yield func(string) bool) {
		if node == nil {
			return
		}
		prefix := make([]rune, 0, len(constraints))
		enumerate(node, constraints, prefix, yield)
	}
}

// enumerate returns false once the consumer has stopped the iteration.
func enumerate(node *TrieNode, constraints []*CharSet, prefix []rune, yield func(string) bool) bool {
	if len(constraints) == 0 {
		if node.terminal {
			return yield(string(prefix))
		}
		return true
	}

	allowed := constraints[0]
	for _, r := range node.order {
		if !allowed.Contains(r) {
			continue
		}
		if !enumerate(node.children[r], constraints[1:], append(prefix, r), yield) {
			return false
		}
	}
	return true
}
