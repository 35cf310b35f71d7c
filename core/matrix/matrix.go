// core/matrix/matrix.go
//
// Protein substitution matrices (BLOSUM, PAM families) with validated
// construction and symmetric two-key score lookup. Matrices are immutable
// once built: shape and symmetry are checked at load time so lookups never
// surprise the caller.
package matrix

import (
	"fmt"
	"sort"
)

// Matrix is an immutable substitution matrix keyed by single-character
// residue symbols. score(a,b) == score(b,a) for every pair, and every row
// symbol is also a column symbol; both invariants hold by construction.
type Matrix struct {
	id     Identity
	scores map[byte]map[byte]int
}

// New validates a nested symbol->symbol->score mapping and wraps it in a
// Matrix. It fails with ErrMalformedData on empty input or multi-character
// keys, ErrNonSquareMatrix when any row's column keys differ from the row
// key set, and ErrAsymmetricMatrix on the first score(a,b) != score(b,a).
func New(id Identity, scores map[string]map[string]int) (*Matrix, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: %s: empty matrix", ErrMalformedData, id)
	}
	m := make(map[byte]map[byte]int, len(scores))
	for row, cols := range scores {
		if len(row) != 1 {
			return nil, fmt.Errorf("%w: %s: row key %q is not a single symbol", ErrMalformedData, id, row)
		}
		if len(cols) != len(scores) {
			return nil, fmt.Errorf("%w: %s: row %q has %d columns, want %d",
				ErrNonSquareMatrix, id, row, len(cols), len(scores))
		}
		r := make(map[byte]int, len(cols))
		for col, score := range cols {
			if len(col) != 1 {
				return nil, fmt.Errorf("%w: %s: column key %q is not a single symbol", ErrMalformedData, id, col)
			}
			if _, ok := scores[col]; !ok {
				return nil, fmt.Errorf("%w: %s: column %q has no matching row", ErrNonSquareMatrix, id, col)
			}
			r[col[0]] = score
		}
		m[row[0]] = r
	}
	for a, cols := range m {
		for b, ab := range cols {
			if ba := m[b][a]; ab != ba {
				return nil, fmt.Errorf("%w: %s: score(%c,%c)=%d but score(%c,%c)=%d",
					ErrAsymmetricMatrix, id, a, b, ab, b, a, ba)
			}
		}
	}
	return &Matrix{id: id, scores: m}, nil
}

// Identity returns the identity the matrix was loaded for.
func (m *Matrix) Identity() Identity { return m.id }

// Len returns the number of residue symbols.
func (m *Matrix) Len() int { return len(m.scores) }

// Symbols returns the residue symbols in ascending byte order.
func (m *Matrix) Symbols() []byte {
	out := make([]byte, 0, len(m.scores))
	for s := range m.scores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Scores returns a copy of the score table keyed by symbol strings, the
// same shape as the bundled JSON files.
func (m *Matrix) Scores() map[string]map[string]int {
	out := make(map[string]map[string]int, len(m.scores))
	for a, cols := range m.scores {
		row := make(map[string]int, len(cols))
		for b, s := range cols {
			row[string(b)] = s
		}
		out[string(a)] = row
	}
	return out
}

// Score returns the substitution score for the pair (a, b). Argument order
// does not matter. It fails with ErrUnknownSymbol, naming the symbol and
// the matrix, when either symbol is not a key.
func (m *Matrix) Score(a, b byte) (int, error) {
	row, ok := m.scores[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q not in %s", ErrUnknownSymbol, string(a), m.id)
	}
	score, ok := row[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q not in %s", ErrUnknownSymbol, string(b), m.id)
	}
	return score, nil
}

// Equal reports value equality: same identity, same symbol set, same scores.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.id != o.id || len(m.scores) != len(o.scores) {
		return false
	}
	for a, cols := range m.scores {
		ocols, ok := o.scores[a]
		if !ok || len(cols) != len(ocols) {
			return false
		}
		for b, score := range cols {
			oscore, ok := ocols[b]
			if !ok || score != oscore {
				return false
			}
		}
	}
	return true
}
