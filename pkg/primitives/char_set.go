package primitives

import "fmt"

const (
	minChar rune = 'a'
	maxChar rune = 'z'

	numChars = int(maxChar-minChar) + 1
)

// CharSet efficiently represents a set of characters allowed at one position
// of a word being enumerated.
type CharSet struct {
	available [numChars]bool
	count     int
}

// NewCharSet returns an empty set over the lowercase ASCII alphabet.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// FullCharSet returns a set containing every character in the alphabet,
// representing an unconstrained position.
func FullCharSet() *CharSet {
	cs := &CharSet{count: numChars}
	for i := range cs.available {
		cs.available[i] = true
	}
	return cs
}

// SingletonCharSet returns a set containing only r, representing a position
// whose character is already forced.
func SingletonCharSet(r rune) (*CharSet, error) {
	cs := &CharSet{}
	if err := cs.Add(r); err != nil {
		return nil, err
	}
	return cs, nil
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}

	if c.available[r-minChar] {
		return nil
	}

	c.count++
	c.available[r-minChar] = true
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	if c.IsFull() {
		return
	}

	if other.IsFull() {
		for i := range c.available {
			c.available[i] = true
		}
		c.count = numChars
		return
	}

	for oi, oa := range other.available {
		if !oa || c.available[oi] {
			continue
		}
		c.available[oi] = true
		c.count++
	}
}

// Contains checks if a character is in the set. Characters outside the
// alphabet are never contained.
func (c *CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	return c.available[r-minChar]
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.count == numChars
}

// Capacity returns the size of the underlying alphabet.
func (c *CharSet) Capacity() int {
	return numChars
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}
