// core/dna/dna.go
//
// Sequence-level DNA analysis: transcription, complements, composition
// metrics, and open reading frame discovery. Every operation validates and
// uppercases its input before doing any work.
package dna

import (
	"math"
	"strings"

	"biobase-core/nucleotide"
)

// Transcribe converts a DNA sequence to its RNA equivalent (T -> U).
func Transcribe(seq string) (string, error) {
	seq, err := nucleotide.ValidateDNA(seq)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(seq, "T", "U"), nil
}

// Complement returns the base-wise complement, 5' to 3' order preserved.
func Complement(seq string) (string, error) {
	seq, err := nucleotide.ValidateDNA(seq)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, err := nucleotide.Complement(seq[i])
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}

// ReverseComplement returns the complement read from the opposite strand.
func ReverseComplement(seq string) (string, error) {
	comp, err := Complement(seq)
	if err != nil {
		return "", err
	}
	out := []byte(comp)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// GCContent returns the percentage of G and C bases, 0 to 100.
func GCContent(seq string) (float64, error) {
	return content(seq, 'G', 'C')
}

// ATContent returns the percentage of A and T bases, 0 to 100.
func ATContent(seq string) (float64, error) {
	return content(seq, 'A', 'T')
}

func content(seq string, x, y byte) (float64, error) {
	seq, err := nucleotide.ValidateDNA(seq)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == x || seq[i] == y {
			n++
		}
	}
	return float64(n) / float64(len(seq)) * 100, nil
}

// Entropy returns the Shannon entropy of the base composition in bits.
// A homopolymer scores 0; an even four-base mix scores 2.
func Entropy(seq string) (float64, error) {
	seq, err := nucleotide.ValidateDNA(seq)
	if err != nil {
		return 0, err
	}
	var counts [4]int
	for i := 0; i < len(seq); i++ {
		counts[strings.IndexByte(nucleotide.DNA, seq[i])]++
	}
	var h float64
	for _, c := range counts {
		if c > 0 {
			p := float64(c) / float64(len(seq))
			h -= p * math.Log2(p)
		}
	}
	return h, nil
}

// Weight returns the molecular weight of a single base, DNA or RNA.
func Weight(base byte) (float64, error) {
	s, err := nucleotide.ValidateNucleotides(string(base))
	if err != nil {
		return 0, err
	}
	return nucleotide.Weights[s[0]], nil
}

// SequenceWeight returns the cumulative molecular weight of a sequence that
// may mix DNA and RNA bases.
func SequenceWeight(seq string) (float64, error) {
	seq, err := nucleotide.ValidateNucleotides(seq)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := 0; i < len(seq); i++ {
		total += nucleotide.Weights[seq[i]]
	}
	return total, nil
}

// ORF is a half-open span over the input sequence: Start is the first base
// of the ATG, End is one past the last base of the stop codon.
type ORF struct {
	Start int
	End   int
}

// ORFs scans left to right for open reading frames: an ATG followed in
// frame by the nearest stop codon. Matches do not overlap; after a hit the
// scan resumes at the stop codon's end.
func ORFs(seq string) ([]ORF, error) {
	seq, err := nucleotide.ValidateDNA(seq)
	if err != nil {
		return nil, err
	}
	var out []ORF
	i := 0
	for i+3 <= len(seq) {
		if seq[i:i+3] != "ATG" {
			i++
			continue
		}
		end := -1
		for j := i + 3; j+3 <= len(seq); j += 3 {
			if nucleotide.IsStopCodon(seq[j : j+3]) {
				end = j + 3
				break
			}
		}
		if end < 0 {
			i++
			continue
		}
		out = append(out, ORF{Start: i, End: end})
		i = end
	}
	return out, nil
}
