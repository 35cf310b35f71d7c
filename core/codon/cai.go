// core/codon/cai.go
package codon

import (
	"fmt"
	"math"
)

// CAI computes the codon adaptation index of a coding sequence against a
// reference codon-usage table: the geometric mean of per-codon weights,
// each weight being the codon's reference frequency divided by the maximum
// frequency among its synonymous codons. Stop codons and codons without
// reference coverage do not contribute. Returns 0 when nothing contributes.
//
// Reference keys may be DNA or RNA codons; they are normalized internally.
// A trailing partial codon in seq is ignored.
func CAI(seq string, ref map[string]float64) (float64, error) {
	s := normalize(seq)
	s = s[:len(s)-len(s)%3]

	codons := make([]string, 0, len(s)/3)
	for i := 0; i < len(s); i += 3 {
		c := s[i : i+3]
		if _, ok := table[c]; !ok {
			return 0, fmt.Errorf("%w: %q at base %d", ErrInvalidCodon, c, i)
		}
		codons = append(codons, c)
	}

	refRNA := make(map[string]float64, len(ref))
	for c, v := range ref {
		refRNA[normalize(c)] = v
	}
	familyMax := make(map[byte]float64)
	for c, aa := range table {
		if aa == Stop {
			continue
		}
		if f := refRNA[c]; f > familyMax[aa] {
			familyMax[aa] = f
		}
	}

	var totalLog float64
	n := 0
	for _, c := range codons {
		aa := table[c]
		if aa == Stop {
			continue
		}
		f, max := refRNA[c], familyMax[aa]
		if f <= 0 || max <= 0 {
			continue
		}
		totalLog += math.Log(f / max)
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return math.Exp(totalLog / float64(n)), nil
}
