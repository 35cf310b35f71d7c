// core/aminoacid/mass.go
package aminoacid

import "fmt"

// Monoisotopic residue masses, Da. monoMassExt adds the extended residues
// on top of the standard twenty.
var monoMass = map[byte]float64{
	'A': 71.037113805,
	'C': 103.009184505,
	'D': 115.026943065,
	'E': 129.042593135,
	'F': 147.068413945,
	'G': 57.021463735,
	'H': 137.058911875,
	'I': 113.084064015,
	'K': 128.094963050,
	'L': 113.084064015,
	'M': 131.040484645,
	'N': 114.042927470,
	'P': 97.052763875,
	'Q': 128.058577540,
	'R': 156.101111050,
	'S': 87.032028435,
	'T': 101.047678505,
	'V': 99.068413945,
	'W': 186.079312980,
	'Y': 163.063328575,
}

var monoMassExt = map[byte]float64{
	'O': 237.147726925,
	'U': 150.953633405,
}

func init() {
	for k, v := range monoMass {
		monoMassExt[k] = v
	}
}

// Mass returns the monoisotopic mass of a standard residue; ext widens the
// lookup to pyrrolysine and selenocysteine.
func Mass(code byte, ext bool) (float64, error) {
	table := monoMass
	if ext {
		table = monoMassExt
	}
	m, ok := table[code]
	if !ok {
		return 0, fmt.Errorf("%w: code %q", ErrUnknown, string(code))
	}
	return m, nil
}

// SequenceMass sums residue masses over a one-letter sequence.
func SequenceMass(seq string, ext bool) (float64, error) {
	var total float64
	for i := 0; i < len(seq); i++ {
		m, err := Mass(seq[i], ext)
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}
