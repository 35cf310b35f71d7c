// core/nucleotide/nucleotide.go
//
// Nucleic-acid alphabets, complements, IUPAC ambiguity codes, and basic
// physical constants shared by the DNA and codon packages.
package nucleotide

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DNA         = "ATCG"
	RNA         = "AUCG"
	Nucleotides = "ATCGU"

	Purines     = "AG"
	Pyrimidines = "CTU"
	WeakPairs   = "AT"
	StrongPairs = "GC"
)

var (
	ErrEmptySequence     = errors.New("nucleotide: empty sequence")
	ErrInvalidNucleotide = errors.New("nucleotide: invalid nucleotide")
)

// Names maps each base to its common name.
var Names = map[byte]string{
	'A': "Adenine",
	'T': "Thymine",
	'C': "Cytosine",
	'G': "Guanine",
	'U': "Uracil",
}

// Weights holds molecular weights in g/mol.
var Weights = map[byte]float64{
	'A': 135.13,
	'T': 126.12,
	'C': 111.10,
	'G': 151.13,
	'U': 112.09,
}

// Complement lookup tables. Zero marks an invalid base.
var dnaComp, rnaComp [256]byte

func init() {
	for _, p := range [][2]byte{{'A', 'T'}, {'T', 'A'}, {'C', 'G'}, {'G', 'C'}} {
		dnaComp[p[0]] = p[1]
	}
	for _, p := range [][2]byte{{'A', 'U'}, {'U', 'A'}, {'C', 'G'}, {'G', 'C'}} {
		rnaComp[p[0]] = p[1]
	}
}

// Complement returns the Watson-Crick partner of a DNA base.
func Complement(b byte) (byte, error) {
	c := dnaComp[b]
	if c == 0 {
		return 0, fmt.Errorf("%w: %q is not a DNA base", ErrInvalidNucleotide, string(b))
	}
	return c, nil
}

// RNAComplement returns the partner of an RNA base.
func RNAComplement(b byte) (byte, error) {
	c := rnaComp[b]
	if c == 0 {
		return 0, fmt.Errorf("%w: %q is not an RNA base", ErrInvalidNucleotide, string(b))
	}
	return c, nil
}

// IUPAC maps each ambiguity code to a character class matching its bases.
var IUPAC = map[byte]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'U': "U",
	'R': "[AG]",
	'Y': "[CT]",
	'M': "[AC]",
	'K': "[GT]",
	'S': "[CG]",
	'W': "[AT]",
	'H': "[ACT]",
	'B': "[CGT]",
	'V': "[ACG]",
	'D': "[AGT]",
	'N': "[ACGTU]",
}

var (
	StartCodons = []string{"ATG"}
	StopCodons  = []string{"TAA", "TAG", "TGA"}
)

// IsStopCodon reports whether a DNA codon is one of the standard stops.
func IsStopCodon(codon string) bool {
	for _, s := range StopCodons {
		if codon == s {
			return true
		}
	}
	return false
}

func validate(seq, alphabet, kind string) (string, error) {
	if seq == "" {
		return "", ErrEmptySequence
	}
	seq = strings.ToUpper(seq)
	for i := 0; i < len(seq); i++ {
		if !strings.ContainsRune(alphabet, rune(seq[i])) {
			return "", fmt.Errorf("%w: %q at position %d is not a %s base",
				ErrInvalidNucleotide, string(seq[i]), i, kind)
		}
	}
	return seq, nil
}

// ValidateDNA uppercases seq and checks it against the DNA alphabet.
func ValidateDNA(seq string) (string, error) { return validate(seq, DNA, "DNA") }

// ValidateRNA uppercases seq and checks it against the RNA alphabet.
func ValidateRNA(seq string) (string, error) { return validate(seq, RNA, "RNA") }

// ValidateNucleotides accepts any mix of DNA and RNA bases.
func ValidateNucleotides(seq string) (string, error) {
	return validate(seq, Nucleotides, "nucleic-acid")
}
