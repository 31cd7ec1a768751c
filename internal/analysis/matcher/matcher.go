package matcher

import (
	"strings"

	"github.com/zhouzirui/folio/backend/internal/model/knowledge"
)

// Outcome 表示一次匹配落在哪一层规则上。
type Outcome string

const (
	Resolved Outcome = "resolved"
	Fallback Outcome = "fallback"
	NotFound Outcome = "not_found"
)

// Result 给出匹配到的回复以及命中的关键字或分组。
type Result struct {
	Reply   string
	Outcome Outcome
	// Keyword is the knowledge entry keyword for Resolved, the group name for
	// Fallback and empty for NotFound.
	Keyword string
}

// Matcher selects canned replies from a fixed knowledge base. It holds no
// mutable state and is safe for concurrent use.
type Matcher struct {
	entries  []knowledge.Entry
	groups   []knowledge.Group
	fallback string
}

// New snapshots the knowledge base tables.
func New(base *knowledge.Base) *Matcher {
	m := &Matcher{
		entries:  base.Entries(),
		groups:   base.Groups(),
		fallback: base.Fallback(),
	}
	for i := range m.groups {
		for j, term := range m.groups[i].Terms {
			m.groups[i].Terms[j] = strings.ToLower(term)
		}
	}
	return m
}

// Match returns the reply for input.
func (m *Matcher) Match(input string) string {
	return m.Resolve(input).Reply
}

// Resolve runs the ordered checks: knowledge entries first, then secondary
// groups, then the default reply.
func (m *Matcher) Resolve(input string) Result {
	normalized := strings.ToLower(input)

	for _, entry := range m.entries {
		if strings.Contains(normalized, entry.Keyword) {
			return Result{Reply: entry.Response, Outcome: Resolved, Keyword: entry.Keyword}
		}
	}

	for _, group := range m.groups {
		if groupMatches(normalized, group) {
			return Result{Reply: group.Response, Outcome: Fallback, Keyword: group.Name}
		}
	}

	return Result{Reply: m.fallback, Outcome: NotFound}
}

func groupMatches(normalized string, group knowledge.Group) bool {
	if group.RequireAll {
		for _, term := range group.Terms {
			if !strings.Contains(normalized, term) {
				return false
			}
		}
		return true
	}

	for _, term := range group.Terms {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}
