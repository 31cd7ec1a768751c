package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/folio/backend/internal/model/knowledge"
)

func seeded(t *testing.T) (*Matcher, *knowledge.Base) {
	t.Helper()
	base := knowledge.Seed("Sayan Chowdhury")
	return New(base), base
}

func responseFor(t *testing.T, base *knowledge.Base, keyword string) string {
	t.Helper()
	for _, e := range base.Entries() {
		if e.Keyword == keyword {
			return e.Response
		}
	}
	t.Fatalf("keyword %q not in knowledge base", keyword)
	return ""
}

func groupResponse(t *testing.T, base *knowledge.Base, name string) string {
	t.Helper()
	for _, g := range base.Groups() {
		if g.Name == name {
			return g.Response
		}
	}
	t.Fatalf("group %q not in knowledge base", name)
	return ""
}

func TestMatchEveryKeywordInDeclarationOrder(t *testing.T) {
	m := New(knowledge.Seed(""))

	want := []struct {
		keyword string
		prefix  string
	}{
		{"projects", "Sayan's main focus areas include AI-powered SaaS solutions"},
		{"skills", "Sayan specializes in Machine Learning, Computer Vision, NLP"},
		{"collaboration", "Sayan is open to AI project collaborations"},
		{"experience", "Sayan's journey started with AI fundamentals in 2020"},
		{"contact", "You can reach Sayan through the contact form on this page"},
		{"future", "Sayan envisions building AI-powered startups"},
		{"philosophy", "Sayan believes that 'Innovation thrives at the intersection of technology and creativity.'"},
	}

	entries := knowledge.Seed("").Entries()
	require.Len(t, entries, len(want))
	for i, w := range want {
		assert.Equal(t, w.keyword, entries[i].Keyword)

		got := m.Resolve(w.keyword)
		assert.Equal(t, Resolved, got.Outcome, w.keyword)
		assert.Equal(t, w.keyword, got.Keyword)
		assert.True(t, strings.HasPrefix(got.Reply, w.prefix), "%s: %q", w.keyword, got.Reply)
	}
}

func TestMatchRoutesQuestions(t *testing.T) {
	m, base := seeded(t)

	cases := []struct {
		input   string
		keyword string
		outcome Outcome
	}{
		{"What is your philosophy?", "philosophy", Resolved},
		{"Open to collaboration?", "collaboration", Resolved},
		{"What does the future hold", "future", Resolved},
		{"your experience with projects", "projects", Resolved},
		{"is he creative", "", NotFound},
		{"hey!", "greeting", Fallback},
	}
	for _, tc := range cases {
		got := m.Resolve(tc.input)
		assert.Equal(t, tc.outcome, got.Outcome, tc.input)
		assert.Equal(t, tc.keyword, got.Keyword, tc.input)
		if tc.outcome == NotFound {
			assert.Equal(t, base.Fallback(), got.Reply, tc.input)
		}
	}
}

func TestMatchKnownKeywordIgnoresCaseAndSurroundings(t *testing.T) {
	m, base := seeded(t)
	want := responseFor(t, base, "projects")

	for _, input := range []string{
		"projects",
		"PROJECTS",
		"What Projects have you shipped lately?",
		"  tell me about the side-projects!!  ",
	} {
		got := m.Resolve(input)
		assert.Equal(t, want, got.Reply, input)
		assert.Equal(t, Resolved, got.Outcome, input)
		assert.Equal(t, "projects", got.Keyword, input)
	}
}

func TestMatchFirstDeclaredKeywordWins(t *testing.T) {
	m, base := seeded(t)

	got := m.Match("tell me about your skills and projects")
	assert.Equal(t, responseFor(t, base, "projects"), got)
}

func TestMatchGreetingFallback(t *testing.T) {
	m, base := seeded(t)

	got := m.Resolve("Hello there")
	assert.Equal(t, Fallback, got.Outcome)
	assert.Equal(t, "greeting", got.Keyword)
	assert.Equal(t, groupResponse(t, base, "greeting"), got.Reply)
	assert.NotEqual(t, base.Fallback(), got.Reply)
}

func TestMatchIdentityRequiresBothTerms(t *testing.T) {
	m, base := seeded(t)

	got := m.Resolve("Who is Sayan?")
	assert.Equal(t, "identity", got.Keyword)
	assert.Equal(t, groupResponse(t, base, "identity"), got.Reply)

	assert.Equal(t, NotFound, m.Resolve("who are you").Outcome)
}

func TestMatchSecondaryGroupOrder(t *testing.T) {
	m, base := seeded(t)

	cases := map[string]string{
		"Do you do 3D work?":       "design",
		"are you an entrepreneur":  "startup",
		"any 3D startup stories":   "design",
		"tell me about the design": "design",
	}
	for input, group := range cases {
		got := m.Resolve(input)
		assert.Equal(t, group, got.Keyword, input)
		assert.Equal(t, groupResponse(t, base, group), got.Reply, input)
	}
}

func TestMatchDefault(t *testing.T) {
	m, base := seeded(t)

	got := m.Resolve("asdfqwerty")
	assert.Equal(t, NotFound, got.Outcome)
	assert.Empty(t, got.Keyword)
	assert.Equal(t, base.Fallback(), got.Reply)
	assert.Equal(t, base.Fallback(), m.Match(""))
}

func TestMatchIsDeterministic(t *testing.T) {
	m, _ := seeded(t)

	first := m.Match("What are your hobbies?")
	for i := 0; i < 50; i++ {
		require.Equal(t, first, m.Match("What are your hobbies?"))
	}
}
