// Package catalog holds the fixed table of magic items served by the lookup handler.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Rarity is the tier label of an item.
type Rarity string

const (
	Common    Rarity = "Common"
	Uncommon  Rarity = "Uncommon"
	Rare      Rarity = "Rare"
	Epic      Rarity = "Epic"
	Legendary Rarity = "Legendary"
)

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool {
	switch r {
	case Common, Uncommon, Rare, Epic, Legendary:
		return true
	}
	return false
}

// Record is the data attached to one catalog name.
type Record struct {
	Rarity      Rarity
	Description string
	Power       int
}

// Entry pairs a canonical name with its record.
type Entry struct {
	Name string
	Record
}

var ErrEmpty = errors.New("catalog: no items")

// Catalog is an immutable, ordered set of entries keyed case-insensitively.
// Safe for concurrent reads; there are no writers after New returns.
type Catalog struct {
	entries []Entry
	index   map[string]int // folded name -> position
}

// New validates entries and builds a Catalog. Names must be non-empty and
// must not collide once case-folded.
func New(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("catalog: item %d: name is required", i)
		}
		if !e.Rarity.Valid() {
			return nil, fmt.Errorf("catalog: item %q: unknown rarity %q", e.Name, e.Rarity)
		}
		if e.Power < 0 {
			return nil, fmt.Errorf("catalog: item %q: power must be >= 0", e.Name)
		}
		k := fold(e.Name)
		if j, dup := c.index[k]; dup {
			return nil, fmt.Errorf("catalog: item %q collides with %q", e.Name, c.entries[j].Name)
		}
		c.index[k] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup finds the entry whose name matches name ignoring case.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[fold(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) Len() int { return len(c.entries) }

// At returns the i'th entry in definition order.
func (c *Catalog) At(i int) Entry { return c.entries[i] }

func (c *Catalog) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Name
	}
	return out
}

// Entries returns a copy of the entries in definition order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

func fold(s string) string { return strings.ToLower(s) }
