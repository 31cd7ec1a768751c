package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyKeyword     = errors.New("knowledge keyword is empty")
	ErrDuplicateKeyword = errors.New("knowledge keyword is duplicated")
)

// Entry maps a topic keyword to its canned response.
type Entry struct {
	Keyword  string `json:"keyword"`
	Response string `json:"response"`
}

// Group is a secondary check evaluated only when no Entry matched.
// With RequireAll every term must appear, otherwise any one term is enough.
type Group struct {
	Name       string   `json:"name"`
	Terms      []string `json:"terms"`
	RequireAll bool     `json:"requireAll,omitempty"`
	Response   string   `json:"response"`
}

// Base is the ordered, immutable table driving canned replies.
type Base struct {
	entries  []Entry
	groups   []Group
	fallback string
}

// New copies the supplied tables so later mutation by the caller has no effect.
func New(entries []Entry, groups []Group, fallback string) (*Base, error) {
	b := &Base{
		entries:  append([]Entry(nil), entries...),
		groups:   make([]Group, 0, len(groups)),
		fallback: fallback,
	}
	for _, g := range groups {
		g.Terms = append([]string(nil), g.Terms...)
		b.groups = append(b.groups, g)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// MustNew is New for tables that are fixed at compile time.
func MustNew(entries []Entry, groups []Group, fallback string) *Base {
	b, err := New(entries, groups, fallback)
	if err != nil {
		panic(err)
	}
	return b
}

// Validate checks that keywords are non-empty, lower-case and unique.
func (b *Base) Validate() error {
	seen := make(map[string]struct{}, len(b.entries))
	for i, e := range b.entries {
		key := strings.TrimSpace(e.Keyword)
		if key == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyKeyword)
		}
		if key != strings.ToLower(key) {
			return fmt.Errorf("entry %d: keyword %q must be lower-case", i, e.Keyword)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("entry %d: %q: %w", i, key, ErrDuplicateKeyword)
		}
		seen[key] = struct{}{}
	}

	for _, g := range b.groups {
		if len(g.Terms) == 0 {
			return fmt.Errorf("group %q has no terms", g.Name)
		}
		for _, term := range g.Terms {
			if strings.TrimSpace(term) == "" {
				return fmt.Errorf("group %q: %w", g.Name, ErrEmptyKeyword)
			}
		}
	}
	return nil
}

// Entries returns the knowledge entries in declaration order.
func (b *Base) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Groups returns the secondary keyword groups in evaluation order.
func (b *Base) Groups() []Group {
	out := make([]Group, len(b.groups))
	for i, g := range b.groups {
		g.Terms = append([]string(nil), g.Terms...)
		out[i] = g
	}
	return out
}

// Fallback is the reply used when nothing matches.
func (b *Base) Fallback() string {
	return b.fallback
}

// Len reports the number of knowledge entries.
func (b *Base) Len() int {
	return len(b.entries)
}
