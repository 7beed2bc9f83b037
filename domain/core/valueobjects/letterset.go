package valueobjects

import (
	"strings"

	apperrors "wordhoard-backend/pkg/errors"
)

// LetterSet is a multiset over byte symbol classes. The 26 uppercase
// letters are the common case, but any byte value is a valid symbol key:
// non-ASCII bytes pass through normalization unchanged and are counted
// under their own class. A fixed counter array keeps every operation a
// single linear pass regardless of how many letters an account holds.
type LetterSet struct {
	counts [256]int
}

// Normalize strips space, tab, CR and LF, and uppercases ASCII a-z.
// Every other byte passes through unchanged. Normalize is idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// NewLetterSet normalizes raw text and counts the resulting symbols.
func NewLetterSet(raw string) LetterSet {
	var set LetterSet
	normalized := Normalize(raw)
	for i := 0; i < len(normalized); i++ {
		set.counts[normalized[i]]++
	}
	return set
}

// Count returns the held count for one symbol class.
func (s LetterSet) Count(symbol byte) int {
	return s.counts[symbol]
}

// Total returns the number of symbols across all classes.
func (s LetterSet) Total() int {
	total := 0
	for _, c := range s.counts {
		total += c
	}
	return total
}

// IsEmpty reports whether no symbols are held.
func (s LetterSet) IsEmpty() bool {
	for _, c := range s.counts {
		if c > 0 {
			return false
		}
	}
	return true
}

// Add merges another multiset into this one.
func (s *LetterSet) Add(other LetterSet) {
	for i, c := range other.counts {
		if c > 0 {
			s.counts[i] += c
		}
	}
}

// Covers reports whether every symbol class required by need is held in
// at least that quantity. Vacuously true for an empty need.
func (s LetterSet) Covers(need LetterSet) bool {
	for i, required := range need.counts {
		if required > 0 && s.counts[i] < required {
			return false
		}
	}
	return true
}

// Subtract removes need from the multiset. The availability check and the
// subtraction happen in one pass under the caller's mutation boundary, so
// a count can never go negative: either every class is sufficient and the
// whole subtraction applies, or nothing changes.
func (s *LetterSet) Subtract(need LetterSet) error {
	if !s.Covers(need) {
		return apperrors.NewShortage("insufficient letters for consumption")
	}
	for i, required := range need.counts {
		if required > 0 {
			s.counts[i] -= required
		}
	}
	return nil
}

// Counts returns the non-zero symbol classes keyed by byte value.
// Used for serialization and API snapshots.
func (s LetterSet) Counts() map[byte]int {
	out := make(map[byte]int)
	for i, c := range s.counts {
		if c > 0 {
			out[byte(i)] = c
		}
	}
	return out
}

// LetterSetFromCounts rebuilds a multiset from stored per-symbol counts.
// Negative stored counts are ignored rather than imported.
func LetterSetFromCounts(counts map[byte]int) LetterSet {
	var set LetterSet
	for symbol, c := range counts {
		if c > 0 {
			set.counts[symbol] = c
		}
	}
	return set
}
