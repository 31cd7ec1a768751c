package knowledge

import (
	"errors"
	"strings"
	"testing"
)

func TestSeedDeclarationOrder(t *testing.T) {
	base := Seed("")

	idx := map[string]int{}
	for i, e := range base.Entries() {
		idx[e.Keyword] = i
	}
	if idx["projects"] >= idx["skills"] {
		t.Fatalf("expected projects before skills, got %d and %d", idx["projects"], idx["skills"])
	}
}

func TestNewRejectsDuplicateKeyword(t *testing.T) {
	_, err := New([]Entry{{Keyword: "a", Response: "1"}, {Keyword: "a", Response: "2"}}, nil, "x")
	if !errors.Is(err, ErrDuplicateKeyword) {
		t.Fatalf("expected duplicate keyword error, got %v", err)
	}
}

func TestNewRejectsEmptyKeyword(t *testing.T) {
	_, err := New([]Entry{{Keyword: "  ", Response: "1"}}, nil, "x")
	if !errors.Is(err, ErrEmptyKeyword) {
		t.Fatalf("expected empty keyword error, got %v", err)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	base := Seed(DefaultOwner)
	entries := base.Entries()
	entries[0].Response = "mutated"

	if base.Entries()[0].Response == "mutated" {
		t.Fatal("knowledge base must not be mutable through Entries")
	}
}

func TestSeedUsesOwnerName(t *testing.T) {
	base := Seed("  Rin Tohsaka ")

	for _, e := range base.Entries() {
		if !strings.Contains(e.Response, "Rin Tohsaka") {
			t.Fatalf("%s: response does not name the owner: %q", e.Keyword, e.Response)
		}
	}
	for _, g := range base.Groups() {
		if g.Name == "identity" && g.Terms[1] != "rin" {
			t.Fatalf("identity group should key on the first name, got %v", g.Terms)
		}
	}
	if !strings.Contains(base.Fallback(), "Rin Tohsaka's portfolio") {
		t.Fatalf("unexpected fallback %q", base.Fallback())
	}
}

func TestWelcomeDefaultsOwner(t *testing.T) {
	want := "Hi! I'm Sayan's AI assistant. Ask me about his projects, skills, or collaboration opportunities!"
	if got := Welcome(""); got != want {
		t.Fatalf("unexpected welcome %q", got)
	}
	if got := Welcome("Rin"); !strings.HasPrefix(got, "Hi! I'm Rin's AI assistant.") {
		t.Fatalf("unexpected welcome %q", got)
	}
}
