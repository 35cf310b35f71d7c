// internal/cli/matrix.go
package cli

import (
	"fmt"
	"os"
	"strings"

	urfave "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"biobase-core/matrix"
)

var matrixFlag = &urfave.StringFlag{
	Name:    "matrix",
	Aliases: []string{"m"},
	Usage:   "Matrix name, e.g. BLOSUM62 or PAM250 (optional, default from config)",
}

var matrixCmd = &urfave.Command{
	Name:  "matrix",
	Usage: "Substitution matrix operations",
	Subcommands: []*urfave.Command{
		matrixListCmd,
		matrixScoreCmd,
		matrixShowCmd,
		matrixVetCmd,
		matrixConvertCmd,
	},
}

type matrixInfo struct {
	Name    string `json:"name" yaml:"name"`
	Family  string `json:"family" yaml:"family"`
	Variant int    `json:"variant" yaml:"variant"`
	Symbols int    `json:"symbols" yaml:"symbols"`
}

type matrixList struct {
	Matrices []matrixInfo `json:"matrices" yaml:"matrices"`
}

func (l matrixList) Text() string {
	names := make([]string, len(l.Matrices))
	for i, m := range l.Matrices {
		names[i] = m.Name
	}
	return strings.Join(names, "\n")
}

var matrixListCmd = &urfave.Command{
	Name:  "list",
	Usage: "List the bundled substitution matrices",
	Action: func(c *urfave.Context) error {
		cfg := getConfig(c)
		var list matrixList
		for _, id := range matrix.Supported() {
			m, err := cfg.Store.Get(id)
			if err != nil {
				return err
			}
			list.Matrices = append(list.Matrices, matrixInfo{
				Name:    id.String(),
				Family:  string(id.Family),
				Variant: id.Variant,
				Symbols: m.Len(),
			})
		}
		return cfg.encode(c, list)
	},
}

type scoreResult struct {
	Matrix string `json:"matrix" yaml:"matrix"`
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Score  int    `json:"score" yaml:"score"`
}

func (r scoreResult) Text() string { return fmt.Sprintf("%d", r.Score) }

var matrixScoreCmd = &urfave.Command{
	Name:      "score",
	Usage:     "Look up the substitution score for a residue pair",
	ArgsUsage: "A B",
	Flags:     []urfave.Flag{matrixFlag},
	Action: func(c *urfave.Context) error {
		cfg := getConfig(c)
		if c.NArg() != 2 {
			return fmt.Errorf("expected two residue symbols, got %d args", c.NArg())
		}
		a, b := c.Args().Get(0), c.Args().Get(1)
		if len(a) != 1 || len(b) != 1 {
			return fmt.Errorf("residues must be single symbols, got %q and %q", a, b)
		}
		m, err := cfg.matrix(c)
		if err != nil {
			return err
		}
		score, err := m.Score(a[0], b[0])
		if err != nil {
			return err
		}
		return cfg.encode(c, scoreResult{
			Matrix: m.Identity().String(),
			A:      a,
			B:      b,
			Score:  score,
		})
	},
}

type showResult struct {
	Matrix string                    `json:"matrix" yaml:"matrix"`
	Scores map[string]map[string]int `json:"scores" yaml:"scores"`
	text   string
}

func (r showResult) Text() string { return r.text }

var matrixShowCmd = &urfave.Command{
	Name:  "show",
	Usage: "Print a full matrix",
	Flags: []urfave.Flag{matrixFlag},
	Action: func(c *urfave.Context) error {
		cfg := getConfig(c)
		m, err := cfg.matrix(c)
		if err != nil {
			return err
		}
		return cfg.encode(c, showResult{
			Matrix: m.Identity().String(),
			Scores: m.Scores(),
			text:   strings.TrimRight(matrix.FormatText(m), "\n"),
		})
	},
}

type vetResult struct {
	Matrix  string `json:"matrix" yaml:"matrix"`
	Symbols int    `json:"symbols" yaml:"symbols"`
	OK      bool   `json:"ok" yaml:"ok"`
}

type vetReport struct {
	Results []vetResult `json:"results" yaml:"results"`
}

func (r vetReport) Text() string {
	lines := make([]string, len(r.Results))
	for i, res := range r.Results {
		lines[i] = fmt.Sprintf("%-10s %2d symbols ok", res.Matrix, res.Symbols)
	}
	return strings.Join(lines, "\n")
}

var matrixVetCmd = &urfave.Command{
	Name:  "vet",
	Usage: "Load and validate every bundled matrix",
	Action: func(c *urfave.Context) error {
		cfg := getConfig(c)
		ids := matrix.Supported()
		results := make([]vetResult, len(ids))

		g := new(errgroup.Group)
		for i, id := range ids {
			i, id := i, id
			g.Go(func() error {
				m, err := matrix.Load(id)
				if err != nil {
					return err
				}
				results[i] = vetResult{Matrix: id.String(), Symbols: m.Len(), OK: true}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		return cfg.encode(c, vetReport{Results: results})
	},
}

var (
	convertInFlag = &urfave.StringFlag{
		Name:     "in",
		Usage:    "Path to a whitespace-separated matrix table",
		Required: true,
	}
	convertOutFlag = &urfave.StringFlag{
		Name:  "out",
		Usage: "Destination JSON file (optional, default: stdout)",
	}
	convertNameFlag = &urfave.StringFlag{
		Name:  "name",
		Usage: "Matrix name to validate the table as, e.g. BLOSUM62 (optional)",
	}
)

var matrixConvertCmd = &urfave.Command{
	Name:  "convert",
	Usage: "Convert a text matrix table to the bundled JSON format",
	Flags: []urfave.Flag{convertInFlag, convertOutFlag, convertNameFlag},
	Action: func(c *urfave.Context) error {
		raw, err := os.ReadFile(c.String(convertInFlag.Name))
		if err != nil {
			return err
		}
		scores, err := matrix.ParseText(raw)
		if err != nil {
			return err
		}
		if name := c.String(convertNameFlag.Name); name != "" {
			id, err := matrix.ParseIdentity(name)
			if err != nil {
				return err
			}
			if _, err := matrix.New(id, scores); err != nil {
				return err
			}
		}
		b, err := matrix.ToJSON(scores)
		if err != nil {
			return err
		}
		if out := c.String(convertOutFlag.Name); out != "" {
			return os.WriteFile(out, append(b, '\n'), 0644)
		}
		_, err = fmt.Fprintln(c.App.Writer, string(b))
		return err
	},
}

// matrix resolves the --matrix flag, falling back to the configured
// default, against the app's memoizing store.
func (a *appConfig) matrix(c *urfave.Context) (*matrix.Matrix, error) {
	name := c.String(matrixFlag.Name)
	if name == "" {
		name = a.Config.DefaultMatrix
	}
	id, err := matrix.ParseIdentity(name)
	if err != nil {
		return nil, err
	}
	return a.Store.Get(id)
}
