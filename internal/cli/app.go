// internal/cli/app.go
//
// Command-line front end. Global flags pick the output format and config
// file; each command group lives in its own file.
package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	urfave "github.com/urfave/cli/v2"

	"biobase-core/matrix"

	"biobase/internal/config"
	"biobase/internal/output"
	"biobase/internal/version"
)

const appConfigKey = "app-config"

var (
	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [text, json, yaml]",
	}

	configFlag = &urfave.StringFlag{
		Name:  "config",
		Usage: "Path to the config file (optional, default: ~/.biobase/config.yaml)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	initLogging(false)

	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Config config.Config
	Format string
	Store  *matrix.Store
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func (a *appConfig) encode(c *urfave.Context, v any) error {
	return output.Encode(c.App.Writer, a.Format, v)
}

func newApp(out io.Writer) *urfave.App {
	return &urfave.App{
		Name:                 "biobase",
		Version:              version.String(),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Biological reference data: substitution matrices, sequence analysis, motif search",
		Writer:               out,
		Flags: []urfave.Flag{
			debugFlag,
			formatFlag,
			configFlag,
		},
		Commands: []*urfave.Command{
			matrixCmd,
			seqCmd,
			motifCmd,
		},
		Before: func(c *urfave.Context) error {
			if c.Bool(debugFlag.Name) {
				initLogging(true)
			}

			path := c.String(configFlag.Name)
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.ReadOrCreate(path)
			if err != nil {
				return err
			}

			f := c.String(formatFlag.Name)
			if f == "" {
				f = cfg.Format
			}
			format, err := output.Normalize(f)
			if err != nil {
				return err
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Config: cfg,
				Format: format,
				Store:  matrix.NewStore(nil),
			}
			return nil
		},
	}
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
