// core/aminoacid/aminoacid.go
//
// Amino-acid identity tables: one-letter codes, three-letter codes, full
// names, and conversions between them. The standard set covers the twenty
// proteinogenic amino acids; the extended set adds pyrrolysine (O) and
// selenocysteine (U).
package aminoacid

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned by lookups with a code or name outside the table.
var ErrUnknown = errors.New("aminoacid: unknown amino acid")

// AminoAcid carries the three standard identifiers for one residue.
type AminoAcid struct {
	Code   byte
	Abbrev string
	Name   string
}

// Standard lists the twenty proteinogenic amino acids by one-letter code.
var Standard = []AminoAcid{
	{'A', "Ala", "Alanine"},
	{'C', "Cys", "Cysteine"},
	{'D', "Asp", "Aspartic acid"},
	{'E', "Glu", "Glutamic acid"},
	{'F', "Phe", "Phenylalanine"},
	{'G', "Gly", "Glycine"},
	{'H', "His", "Histidine"},
	{'I', "Ile", "Isoleucine"},
	{'K', "Lys", "Lysine"},
	{'L', "Leu", "Leucine"},
	{'M', "Met", "Methionine"},
	{'N', "Asn", "Asparagine"},
	{'P', "Pro", "Proline"},
	{'Q', "Gln", "Glutamine"},
	{'R', "Arg", "Arginine"},
	{'S', "Ser", "Serine"},
	{'T', "Thr", "Threonine"},
	{'V', "Val", "Valine"},
	{'W', "Trp", "Tryptophan"},
	{'Y', "Tyr", "Tyrosine"},
}

// Extended lists the rare naturally occurring additions.
var Extended = []AminoAcid{
	{'O', "Pyl", "Pyrrolysine"},
	{'U', "Sec", "Selenocysteine"},
}

const (
	OneLetterCodes    = "ACDEFGHIKLMNPQRSTVWY"
	OneLetterCodesExt = OneLetterCodes + "OU"
)

var (
	byCode   = map[byte]AminoAcid{}
	byAbbrev = map[string]AminoAcid{}
	byName   = map[string]AminoAcid{}
)

func init() {
	for _, aa := range append(append([]AminoAcid{}, Standard...), Extended...) {
		byCode[aa.Code] = aa
		byAbbrev[aa.Abbrev] = aa
		byName[aa.Name] = aa
	}
}

// ThreeLetter converts a one-letter code to its three-letter abbreviation.
func ThreeLetter(code byte) (string, error) {
	aa, ok := byCode[code]
	if !ok {
		return "", fmt.Errorf("%w: code %q", ErrUnknown, string(code))
	}
	return aa.Abbrev, nil
}

// FullName converts a one-letter code to the full amino-acid name.
func FullName(code byte) (string, error) {
	aa, ok := byCode[code]
	if !ok {
		return "", fmt.Errorf("%w: code %q", ErrUnknown, string(code))
	}
	return aa.Name, nil
}

// FromThreeLetter resolves a three-letter abbreviation, e.g. "Ala".
func FromThreeLetter(abbrev string) (AminoAcid, error) {
	aa, ok := byAbbrev[abbrev]
	if !ok {
		return AminoAcid{}, fmt.Errorf("%w: abbreviation %q", ErrUnknown, abbrev)
	}
	return aa, nil
}

// FromName resolves a full name, e.g. "Alanine".
func FromName(name string) (AminoAcid, error) {
	aa, ok := byName[name]
	if !ok {
		return AminoAcid{}, fmt.Errorf("%w: name %q", ErrUnknown, name)
	}
	return aa, nil
}

// Valid reports whether every residue in seq is a standard one-letter code;
// ext widens the check to the extended set.
func Valid(seq string, ext bool) bool {
	for i := 0; i < len(seq); i++ {
		if _, ok := byCode[seq[i]]; !ok {
			return false
		}
		if !ext && (seq[i] == 'O' || seq[i] == 'U') {
			return false
		}
	}
	return true
}

// codonsPerAA counts the synonymous codons per amino acid; '*' covers the
// three stop codons.
var codonsPerAA = map[byte]int{
	'A': 4, 'C': 2, 'D': 2, 'E': 2, 'F': 2, 'G': 4, 'H': 2, 'I': 3,
	'K': 2, 'L': 6, 'M': 1, 'N': 2, 'P': 4, 'Q': 2, 'R': 6, 'S': 6,
	'T': 4, 'V': 4, 'W': 1, 'Y': 2, '*': 3,
}

// CodonCount returns the number of codons encoding the amino acid, with
// '*' standing for the stop signal.
func CodonCount(code byte) (int, error) {
	n, ok := codonsPerAA[code]
	if !ok {
		return 0, fmt.Errorf("%w: code %q", ErrUnknown, string(code))
	}
	return n, nil
}
