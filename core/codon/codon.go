// core/codon/codon.go
//
// The standard genetic code: RNA codon to amino-acid translation. DNA
// input is accepted everywhere and normalized to RNA first.
package codon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const Stop byte = '*'

var (
	ErrInvalidCodon = errors.New("codon: invalid codon")
	ErrLength       = errors.New("codon: sequence length is not a multiple of 3")
)

// table maps RNA codons to one-letter amino-acid codes; stops map to '*'.
var table = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": Stop, "UAG": Stop,
	"UGU": 'C', "UGC": 'C', "UGA": Stop, "UGG": 'W',
	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// normalize uppercases, strips whitespace, and converts DNA T to RNA U.
func normalize(seq string) string {
	seq = strings.ToUpper(seq)
	seq = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, seq)
	return strings.ReplaceAll(seq, "T", "U")
}

// Lookup translates a single codon, DNA or RNA.
func Lookup(codon string) (byte, error) {
	aa, ok := table[normalize(codon)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodon, codon)
	}
	return aa, nil
}

// All returns the 64 RNA codons in lexical order.
func All() []string {
	out := make([]string, 0, len(table))
	for c := range table {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// split validates length and cuts the normalized sequence into codons.
func split(seq string) ([]string, error) {
	s := normalize(seq)
	if len(s)%3 != 0 {
		return nil, fmt.Errorf("%w: %d bases", ErrLength, len(s))
	}
	codons := make([]string, 0, len(s)/3)
	for i := 0; i < len(s); i += 3 {
		c := s[i : i+3]
		if _, ok := table[c]; !ok {
			return nil, fmt.Errorf("%w: %q at base %d", ErrInvalidCodon, c, i)
		}
		codons = append(codons, c)
	}
	return codons, nil
}

// Translate converts a coding sequence to one-letter amino acids. Stop
// codons appear as '*'; translation does not halt on them.
func Translate(seq string) (string, error) {
	codons, err := split(seq)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(codons))
	for i, c := range codons {
		out[i] = table[c]
	}
	return string(out), nil
}

// TranslateToStop converts a coding sequence up to (and excluding) the
// first stop codon.
func TranslateToStop(seq string) (string, error) {
	codons, err := split(seq)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, c := range codons {
		aa := table[c]
		if aa == Stop {
			break
		}
		sb.WriteByte(aa)
	}
	return sb.String(), nil
}
