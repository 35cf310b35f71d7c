// internal/cli/motif.go
package cli

import (
	"fmt"
	"sort"
	"strings"

	urfave "github.com/urfave/cli/v2"

	"biobase-core/motif"
)

var motifCmd = &urfave.Command{
	Name:  "motif",
	Usage: "Protein motif search",
	Subcommands: []*urfave.Command{
		motifFindCmd,
		motifListCmd,
	},
}

var extFlag = &urfave.BoolFlag{
	Name:  "ext",
	Usage: "Admit pyrrolysine (O) and selenocysteine (U) residues",
}

type motifResult struct {
	Pattern string       `json:"pattern" yaml:"pattern"`
	Spans   []motif.Span `json:"spans" yaml:"spans"`
}

func (r motifResult) Text() string {
	if len(r.Spans) == 0 {
		return "no matches"
	}
	lines := make([]string, len(r.Spans))
	for i, s := range r.Spans {
		lines[i] = fmt.Sprintf("%d\t%d", s.Start, s.End)
	}
	return strings.Join(lines, "\n")
}

var motifFindCmd = &urfave.Command{
	Name:      "find",
	Usage:     "Find a pattern in a protein sequence, overlapping matches included",
	ArgsUsage: "PATTERN SEQUENCE",
	Flags:     []urfave.Flag{extFlag},
	Action: func(c *urfave.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("expected PATTERN and SEQUENCE, got %d args", c.NArg())
		}
		pattern, seq := c.Args().Get(0), c.Args().Get(1)
		spans, err := motif.Find(seq, pattern, c.Bool(extFlag.Name))
		if err != nil {
			return err
		}
		return getConfig(c).encode(c, motifResult{Pattern: pattern, Spans: spans})
	},
}

type motifCatalog struct {
	Motifs []motif.NamedMotif `json:"motifs" yaml:"motifs"`
}

func (r motifCatalog) Text() string {
	lines := make([]string, len(r.Motifs))
	for i, m := range r.Motifs {
		lines[i] = fmt.Sprintf("%-16s %-14s %s", m.Name, m.Sequence, m.Description)
	}
	return strings.Join(lines, "\n")
}

var motifListCmd = &urfave.Command{
	Name:  "list",
	Usage: "List well-known sequence motifs",
	Action: func(c *urfave.Context) error {
		names := make([]string, 0, len(motif.Catalog))
		for name := range motif.Catalog {
			names = append(names, name)
		}
		sort.Strings(names)
		var cat motifCatalog
		for _, name := range names {
			cat.Motifs = append(cat.Motifs, motif.Catalog[name])
		}
		return getConfig(c).encode(c, cat)
	},
}
