package axiom

import (
	"strings"
	"testing"
)

func TestRegistryCount(t *testing.T) {
	r := New()
	if r.Count() != 12 {
		t.Errorf("expected 12 axioms, got %d", r.Count())
	}
}

func TestRegistryDigestStable(t *testing.T) {
	r1 := New()
	r2 := New()
	if r1.Digest() != r2.Digest() {
		t.Errorf("digest should be deterministic: %s != %s", r1.Digest(), r2.Digest())
	}
	if len(r1.Digest()) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(r1.Digest()))
	}
}

func TestVerifyIntegrity(t *testing.T) {
	r := New()
	if err := r.VerifyIntegrity(); err != nil {
		t.Fatalf("fresh registry should pass integrity check: %v", err)
	}
}

func TestVerifyIntegrityDetectsMutation(t *testing.T) {
	r := New()

	// Mutate the backing slice directly; VerifyIntegrity must notice.
	r.axioms[0] = "This statement does not exist"

	if err := r.VerifyIntegrity(); err == nil {
		t.Fatal("mutated registry should fail integrity check")
	}
}

func TestRegistriesDoNotShareBackingStorage(t *testing.T) {
	r1 := New()
	r1.axioms[0] = "tampered axiom"

	// A fresh registry must capture the pristine table, not the tampered one.
	r2 := New()
	if r2.Axioms()[0] != "This statement exists" {
		t.Fatalf("new registry inherited tampered axiom: %q", r2.Axioms()[0])
	}
	if err := r2.VerifyIntegrity(); err != nil {
		t.Errorf("fresh registry should pass integrity check: %v", err)
	}

	// And the tampered instance still reports the violation.
	if err := r1.VerifyIntegrity(); err == nil {
		t.Error("tampered registry should fail integrity check")
	}
}

func TestMatchExactAxiom(t *testing.T) {
	r := New()
	ax, ok := r.Match("This statement exists")
	if !ok {
		t.Fatal("expected match for verbatim axiom")
	}
	if ax != "This statement exists" {
		t.Errorf("expected first axiom, got %q", ax)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	r := New()
	ax, ok := r.Match("ENERGY IS CONSERVED")
	if !ok {
		t.Fatal("expected case-insensitive match")
	}
	if ax != "Energy is conserved" {
		t.Errorf("expected energy axiom, got %q", ax)
	}
}

func TestMatchEmbeddedAxiom(t *testing.T) {
	r := New()
	ax, ok := r.Match("As we know, energy is conserved in closed systems")
	if !ok {
		t.Fatal("expected match for claim containing axiom keywords")
	}
	if ax != "Energy is conserved" {
		t.Errorf("expected energy axiom, got %q", ax)
	}
}

func TestMatchNoMatch(t *testing.T) {
	r := New()
	if ax, ok := r.Match("Bitcoin will hit $200k this year"); ok {
		t.Errorf("expected no match, got %q", ax)
	}
	if _, ok := r.Match(""); ok {
		t.Error("empty claim should not match")
	}
}

func TestMatchFirstWins(t *testing.T) {
	r := New()

	// A claim covering keywords of several axioms resolves to the earliest.
	claim := strings.Join(r.Axioms(), " ")
	ax, ok := r.Match(claim)
	if !ok {
		t.Fatal("expected match for all-axiom claim")
	}
	if ax != r.Axioms()[0] {
		t.Errorf("expected first axiom to win, got %q", ax)
	}
}

func TestAxiomsReturnsCopy(t *testing.T) {
	r := New()
	axioms := r.Axioms()
	axioms[0] = "tampered"

	if err := r.VerifyIntegrity(); err != nil {
		t.Errorf("mutating the returned slice must not affect the registry: %v", err)
	}
}

func TestKeywordSetStripsStopWords(t *testing.T) {
	kws := keywordSet("The entropy of an isolated system")
	for _, kw := range kws {
		if kw == "the" || kw == "of" || kw == "an" {
			t.Errorf("stop word %q should be excluded", kw)
		}
	}
}
