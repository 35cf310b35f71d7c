// core/motif/motif.go
//
// Protein motif search. Patterns are Go regular expressions; a plain
// substring is a valid pattern. Matches are reported as half-open spans
// and may overlap.
package motif

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"biobase-core/aminoacid"
)

var (
	ErrEmptySequence  = errors.New("motif: empty sequence")
	ErrEmptyPattern   = errors.New("motif: empty pattern")
	ErrBadPattern     = errors.New("motif: pattern does not compile")
	ErrInvalidResidue = errors.New("motif: invalid residue in sequence")
)

// Span is a 0-based half-open match location.
type Span struct {
	Start int
	End   int
}

// Find returns every match of pattern in seq, including overlapping ones,
// left to right. The sequence must consist of one-letter amino-acid codes;
// ext admits pyrrolysine and selenocysteine as well.
func Find(seq, pattern string, ext bool) ([]Span, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return find(seq, re, ext)
}

// FindAll runs a motif search over a set of named sequences. Records that
// fail residue validation are reported in Invalid rather than aborting the
// batch; records without a match are listed in NoMatch. An empty record
// set or an empty record sequence is an error.
func FindAll(records map[string]string, pattern string, ext bool) (*BatchResult, error) {
	if len(records) == 0 {
		return nil, errors.New("motif: empty record set")
	}
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	res := &BatchResult{
		Matches: make(map[string][]Span),
		Invalid: make(map[string]error),
	}
	for id, seq := range records {
		if seq == "" {
			return nil, fmt.Errorf("%w: record %q", ErrEmptySequence, id)
		}
	}
	for id, seq := range records {
		spans, err := find(seq, re, ext)
		if err != nil {
			res.Invalid[id] = err
			continue
		}
		if len(spans) == 0 {
			res.NoMatch = append(res.NoMatch, id)
			continue
		}
		res.Matches[id] = spans
	}
	sort.Strings(res.NoMatch)
	return res, nil
}

// BatchResult splits a FindAll run into matched, invalid, and unmatched
// records.
type BatchResult struct {
	Matches map[string][]Span
	Invalid map[string]error
	NoMatch []string
}

func compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
	}
	return re, nil
}

// find anchors the pattern at every position so that overlapping matches
// are all reported.
func find(seq string, re *regexp.Regexp, ext bool) ([]Span, error) {
	if seq == "" {
		return nil, ErrEmptySequence
	}
	if !aminoacid.Valid(seq, ext) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidResidue, seq)
	}
	spans := []Span{}
	for i := 0; i < len(seq); i++ {
		if loc := re.FindStringIndex(seq[i:]); loc != nil {
			spans = append(spans, Span{Start: i, End: i + loc[1]})
		}
	}
	return spans, nil
}
