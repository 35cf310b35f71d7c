// internal/cli/seq.go
package cli

import (
	"fmt"
	"os"
	"strings"

	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"biobase-core/codon"
	"biobase-core/dna"
)

var seqCmd = &urfave.Command{
	Name:  "seq",
	Usage: "DNA and RNA sequence analysis",
	Subcommands: []*urfave.Command{
		seqTranscribeCmd,
		seqComplementCmd,
		seqRevCompCmd,
		seqGCCmd,
		seqATCmd,
		seqEntropyCmd,
		seqWeightCmd,
		seqTranslateCmd,
		seqORFsCmd,
		seqCAICmd,
	},
}

type seqResult struct {
	Sequence string `json:"sequence" yaml:"sequence"`
	Result   string `json:"result" yaml:"result"`
}

func (r seqResult) Text() string { return r.Result }

type numResult struct {
	Sequence string  `json:"sequence" yaml:"sequence"`
	Value    float64 `json:"value" yaml:"value"`
}

func (r numResult) Text() string { return fmt.Sprintf("%g", r.Value) }

// arg pulls the single positional sequence argument.
func arg(c *urfave.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected one sequence argument, got %d", c.NArg())
	}
	return c.Args().First(), nil
}

func seqCommand(name, usage string, fn func(string) (string, error)) *urfave.Command {
	return &urfave.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "SEQUENCE",
		Action: func(c *urfave.Context) error {
			seq, err := arg(c)
			if err != nil {
				return err
			}
			res, err := fn(seq)
			if err != nil {
				return err
			}
			return getConfig(c).encode(c, seqResult{Sequence: seq, Result: res})
		},
	}
}

func numCommand(name, usage string, fn func(string) (float64, error)) *urfave.Command {
	return &urfave.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "SEQUENCE",
		Action: func(c *urfave.Context) error {
			seq, err := arg(c)
			if err != nil {
				return err
			}
			v, err := fn(seq)
			if err != nil {
				return err
			}
			return getConfig(c).encode(c, numResult{Sequence: seq, Value: v})
		},
	}
}

var (
	seqTranscribeCmd = seqCommand("transcribe", "Transcribe DNA to RNA", dna.Transcribe)
	seqComplementCmd = seqCommand("complement", "Base-wise DNA complement", dna.Complement)
	seqRevCompCmd    = seqCommand("revcomp", "Reverse complement", dna.ReverseComplement)

	seqGCCmd      = numCommand("gc", "GC content percentage", dna.GCContent)
	seqATCmd      = numCommand("at", "AT content percentage", dna.ATContent)
	seqEntropyCmd = numCommand("entropy", "Shannon entropy of the base composition", dna.Entropy)
	seqWeightCmd  = numCommand("weight", "Cumulative molecular weight (g/mol)", dna.SequenceWeight)
)

var toStopFlag = &urfave.BoolFlag{
	Name:  "to-stop",
	Usage: "Stop translating at the first stop codon",
}

var seqTranslateCmd = &urfave.Command{
	Name:      "translate",
	Usage:     "Translate a coding sequence to amino acids",
	ArgsUsage: "SEQUENCE",
	Flags:     []urfave.Flag{toStopFlag},
	Action: func(c *urfave.Context) error {
		seq, err := arg(c)
		if err != nil {
			return err
		}
		translate := codon.Translate
		if c.Bool(toStopFlag.Name) {
			translate = codon.TranslateToStop
		}
		protein, err := translate(seq)
		if err != nil {
			return err
		}
		return getConfig(c).encode(c, seqResult{Sequence: seq, Result: protein})
	},
}

type orfResult struct {
	Sequence string    `json:"sequence" yaml:"sequence"`
	ORFs     []dna.ORF `json:"orfs" yaml:"orfs"`
}

func (r orfResult) Text() string {
	if len(r.ORFs) == 0 {
		return "no open reading frames"
	}
	lines := make([]string, len(r.ORFs))
	for i, o := range r.ORFs {
		lines[i] = fmt.Sprintf("%d\t%d\t%s", o.Start, o.End, r.Sequence[o.Start:o.End])
	}
	return strings.Join(lines, "\n")
}

var seqORFsCmd = &urfave.Command{
	Name:      "orfs",
	Usage:     "Find open reading frames",
	ArgsUsage: "SEQUENCE",
	Action: func(c *urfave.Context) error {
		seq, err := arg(c)
		if err != nil {
			return err
		}
		orfs, err := dna.ORFs(seq)
		if err != nil {
			return err
		}
		return getConfig(c).encode(c, orfResult{Sequence: strings.ToUpper(seq), ORFs: orfs})
	},
}

var refFlag = &urfave.StringFlag{
	Name:     "ref",
	Usage:    "Path to a YAML file of reference codon usage counts",
	Required: true,
}

var seqCAICmd = &urfave.Command{
	Name:      "cai",
	Usage:     "Codon adaptation index against a reference usage table",
	ArgsUsage: "SEQUENCE",
	Flags:     []urfave.Flag{refFlag},
	Action: func(c *urfave.Context) error {
		seq, err := arg(c)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(c.String(refFlag.Name))
		if err != nil {
			return err
		}
		var ref map[string]float64
		if err := yaml.Unmarshal(raw, &ref); err != nil {
			return fmt.Errorf("parsing reference table: %w", err)
		}
		v, err := codon.CAI(seq, ref)
		if err != nil {
			return err
		}
		return getConfig(c).encode(c, numResult{Sequence: seq, Value: v})
	},
}
