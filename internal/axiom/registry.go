// Package axiom holds the Truth Floor: a fixed, integrity-checked list of
// canonical true statements used as a zero-cost verification reference for
// the lowest truth tiers.
package axiom

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// truthFloor is the immutable axiom list. Order is significant: it feeds the
// integrity digest and breaks ties during matching.
var truthFloor = [...]string{
	"This statement exists",
	"A and not-A cannot both be true in the same context",
	"Energy is conserved",
	"c = 299792458 m/s in vacuum",
	"E = hν",
	"π is transcendental",
	"e is transcendental",
	"Every integer greater than 1 has unique prime factorization",
	"Shannon entropy of any message is >= 0",
	"Entropy of an isolated system never decreases",
	"An unknown quantum state cannot be perfectly cloned",
	"Verifying the Truth Floor adds zero net friction",
}

// stopWords are excluded from axiom keyword sets before matching.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "is": {}, "of": {}, "in": {}, "to": {}, "and": {}, "an": {},
}

// matchThreshold is the fraction of an axiom's keywords that must appear in
// a claim for it to count as a match.
const matchThreshold = 0.6

// Registry is the ordered axiom set with a digest captured at construction.
// It is read-only after New and safe for concurrent use.
type Registry struct {
	axioms   []string
	digest   string
	keywords [][]string // per-axiom lowercased keyword sets
}

// New builds the registry and captures the integrity digest. Each registry
// copies the axiom table so a mutation of one instance can never leak into
// the package-level table or into registries constructed later.
func New() *Registry {
	axioms := make([]string, len(truthFloor))
	copy(axioms, truthFloor[:])
	keywords := make([][]string, len(axioms))
	for i, ax := range axioms {
		keywords[i] = keywordSet(ax)
	}
	return &Registry{
		axioms:   axioms,
		digest:   digest(axioms),
		keywords: keywords,
	}
}

// digest computes the content hash over the joined axiom text.
func digest(axioms []string) string {
	sum := sha256.Sum256([]byte(strings.Join(axioms, "\n")))
	return hex.EncodeToString(sum[:])
}

// keywordSet returns an axiom's lowercased words minus stop words.
func keywordSet(axiom string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, w := range strings.Fields(strings.ToLower(axiom)) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// Axioms returns the fixed axiom list in registry order.
func (r *Registry) Axioms() []string {
	out := make([]string, len(r.axioms))
	copy(out, r.axioms)
	return out
}

// Count returns the number of axioms.
func (r *Registry) Count() int {
	return len(r.axioms)
}

// Digest returns the integrity digest captured at construction.
func (r *Registry) Digest() string {
	return r.digest
}

// VerifyIntegrity recomputes the digest and compares it to the one captured
// at construction. A mismatch means the axiom table was mutated after
// initialization and the process must not proceed with reasoning.
func (r *Registry) VerifyIntegrity() error {
	if current := digest(r.axioms); current != r.digest {
		return fmt.Errorf("truth floor integrity compromised: digest %s != %s", current, r.digest)
	}
	return nil
}

// Match checks a free-text claim against every axiom in order and returns
// the first axiom whose keyword set overlaps the claim by at least 60%.
func (r *Registry) Match(claim string) (string, bool) {
	claimLower := strings.ToLower(claim)
	for i, ax := range r.axioms {
		kws := r.keywords[i]
		if len(kws) == 0 {
			continue
		}
		hits := 0
		for _, kw := range kws {
			if strings.Contains(claimLower, kw) {
				hits++
			}
		}
		if float64(hits) >= float64(len(kws))*matchThreshold {
			return ax, true
		}
	}
	return "", false
}
