package primitives

import (
	"errors"
	"fmt"
	"slices"
)

// ErrWordLength is returned when a word's length does not match the trie's
// configured word length.
var ErrWordLength = errors.New("word length mismatch")

// TrieNode is a single node of a Trie. A node is terminal iff the path from
// the root to it spells a complete vocabulary word.
type TrieNode struct {
	terminal bool
	children map[rune]*TrieNode

	// order holds the children's runes in ascending order, so that
	// enumeration is deterministic without sorting at query time.
	order []rune
}

// Terminal reports whether the path to this node is a complete word.
func (n *TrieNode) Terminal() bool {
	return n.terminal
}

// Child returns the child node for r, or nil if there is none.
func (n *TrieNode) Child(r rune) *TrieNode {
	return n.children[r]
}

func (n *TrieNode) child(r rune) *TrieNode {
	if c, ok := n.children[r]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[rune]*TrieNode)
	}
	c := &TrieNode{}
	n.children[r] = c

	at, _ := slices.BinarySearch(n.order, r)
	n.order = slices.Insert(n.order, at, r)
	return c
}

// Trie is an ordered prefix tree over a vocabulary of uniform-length words.
//
// It is built once and read-only afterwards: nothing mutates a Trie after
// construction, so it may be shared across goroutines without locking.
type Trie struct {
	root    *TrieNode
	wordLen int
	size    int
}

// NewTrie builds a trie over words, all of which must have length wordLen.
func NewTrie(words []string, wordLen int) (*Trie, error) {
	t := &Trie{root: &TrieNode{}, wordLen: wordLen}
	for _, w := range words {
		if err := t.insert(w); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Trie) insert(word string) error {
	if len(word) != t.wordLen {
		return fmt.Errorf("insert %q into %d-letter trie: %w", word, t.wordLen, ErrWordLength)
	}

	node := t.root
	for _, r := range word {
		node = node.child(r)
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
	return nil
}

// Root returns the node representing the empty prefix.
func (t *Trie) Root() *TrieNode {
	return t.root
}

// WordLength returns the uniform word length of the vocabulary.
func (t *Trie) WordLength() int {
	return t.wordLen
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.size
}

// Contains reports whether word was inserted into the trie.
func (t *Trie) Contains(word string) bool {
	node := t.root
	for _, r := range word {
		node = node.Child(r)
		if node == nil {
			return false
		}
	}
	return node.terminal
}
