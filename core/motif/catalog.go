// core/motif/catalog.go
package motif

// NamedMotif describes a common regulatory sequence element in IUPAC
// notation. A '|' marks an exon/intron boundary where one applies.
type NamedMotif struct {
	Name        string
	Sequence    string
	Description string
}

// Catalog lists well-known nucleotide motifs by short name.
var Catalog = map[string]NamedMotif{
	"kozak": {
		Name:        "kozak",
		Sequence:    "gccgccRccAUGG",
		Description: "Consensus Kozak sequence for translation initiation",
	},
	"tata_box": {
		Name:        "tata_box",
		Sequence:    "TATAWAW",
		Description: "Core promoter element for transcription",
	},
	"polya_signal": {
		Name:        "polya_signal",
		Sequence:    "AAUAAA",
		Description: "Polyadenylation signal sequence",
	},
	"splice_donor": {
		Name:        "splice_donor",
		Sequence:    "MAG|GTRAGT",
		Description: "5' splice site consensus",
	},
	"splice_acceptor": {
		Name:        "splice_acceptor",
		Sequence:    "CAG|G",
		Description: "3' splice site consensus",
	},
}
