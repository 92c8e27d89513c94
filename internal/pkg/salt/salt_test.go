package salt

import (
	"strings"
	"testing"
)

func TestAlphabetComposition(t *testing.T) {
	if len(Alphabet) != 79 {
		t.Fatalf("alphabet length = %d, want 79", len(Alphabet))
	}

	if strings.ContainsRune(Alphabet, 'm') {
		t.Error("alphabet must not contain lowercase 'm'")
	}
	if strings.ContainsRune(Alphabet, 'I') {
		t.Error("alphabet must not contain uppercase 'I'")
	}

	seen := make(map[rune]struct{}, len(Alphabet))
	for _, r := range Alphabet {
		if _, dup := seen[r]; dup {
			t.Fatalf("alphabet contains duplicate character %q", r)
		}
		seen[r] = struct{}{}
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator()

	for range 50 {
		s := g.Generate()

		if len(s) != Length {
			t.Fatalf("salt length = %d, want %d", len(s), Length)
		}

		seen := make(map[rune]struct{}, Length)
		for _, r := range s {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("salt %q contains character %q outside the alphabet", s, r)
			}
			if _, dup := seen[r]; dup {
				t.Fatalf("salt %q repeats character %q within one draw", s, r)
			}
			seen[r] = struct{}{}
		}
	}
}

func TestGenerateDrawsAreIndependent(t *testing.T) {
	g := NewGenerator()

	a := g.Generate()
	b := g.Generate()
	c := g.Generate()

	// Three identical draws from a 79-choose-14 ordered space would point at
	// a broken randomness source.
	if a == b && b == c {
		t.Fatalf("three consecutive draws were identical: %q", a)
	}
}
