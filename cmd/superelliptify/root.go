package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"honnef.co/go/superellipse"
	"honnef.co/go/superellipse/customparam"
	"honnef.co/go/superellipse/outline"
)

// flags holds the raw flag values. They only override the configuration
// when set on the command line.
type flags struct {
	configPath string
	param      string
	verbose    bool

	font      string
	text      string
	output    string
	workers   int
	precision int

	tension      float64
	adjustment   float64
	slant        float64
	distribution string
	scale        string
	eccentricity string
	scope        string

	tolerance     float64
	maxIterations int
}

func newRootCmd() *cobra.Command { return newRootCmdWith(new(flags)) }

func newRootCmdWith(f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:   "superelliptify",
		Short: "Tighten the curves of font glyphs towards the squircle",
		Long: `superelliptify moves the handles of every cubic segment of the
selected glyphs between the circle approximation (tension 0) and the
squircle (tension 100) and writes the glyphs as an SVG document.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg, f.verbose)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "TOML configuration `file`")
	pf.StringVarP(&f.param, "param", "p", "", "custom parameter string, e.g. \"Superelliptify; tension:20\"")
	pf.Float64VarP(&f.tension, "tension", "t", superellipse.DefaultTension, "tension in [0, 100]")
	pf.Float64VarP(&f.adjustment, "adjustment", "a", superellipse.DefaultAdjustment, "eccentricity adjustment in [0, 100]")
	pf.Float64Var(&f.slant, "slant", 0, "slant in degrees, in [-45, 45]")
	pf.StringVarP(&f.distribution, "distribution", "d", superellipse.Balanced.String(), "balanced, preserve, smooth or smart")
	pf.StringVar(&f.scale, "scale", superellipse.LinearScale.String(), "tension scale: linear or quadratic")
	pf.StringVar(&f.eccentricity, "eccentricity", superellipse.FromShape.String(), "eccentricity source: shape or segment")
	pf.StringVar(&f.scope, "scope", superellipse.PerContour.String(), "eccentricity scope: contour or glyph")

	fl := root.Flags()
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log skipped segments and junctions")
	fl.StringVar(&f.font, "font", "", "OpenType or TrueType font `file`")
	fl.StringVar(&f.text, "text", "O", "characters whose glyphs to transform")
	fl.StringVarP(&f.output, "output", "o", "-", "SVG output `file`, - for standard output")
	fl.IntVarP(&f.workers, "workers", "j", 0, "glyphs processed in parallel, 0 for one per CPU")
	fl.IntVar(&f.precision, "precision", 2, "decimals in SVG coordinates, 0 for exact")
	fl.Float64Var(&f.tolerance, "tolerance", superellipse.DefaultSolverOptions().Tolerance, "continuity solver tolerance")
	fl.IntVar(&f.maxIterations, "max-iterations", superellipse.DefaultSolverOptions().MaxIterations, "continuity solver iteration cap")

	root.AddCommand(newParamCmd(f))
	return root
}

func newParamCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "param",
		Short: "Print the custom parameter string for the effective parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), customparam.Format(cfg.Params))
			return err
		},
	}
}

// resolve layers the configuration file, changed flags and the custom
// parameter string over the defaults.
func (f *flags) resolve(fs *pflag.FlagSet) (config, error) {
	cfg := defaultConfig()
	if f.configPath != "" {
		if err := loadConfig(f.configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	var err error
	text := func(name, value string, dst interface{ UnmarshalText([]byte) error }) {
		if err == nil && fs.Changed(name) {
			err = dst.UnmarshalText([]byte(value))
		}
	}
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("font", func() { cfg.Font = f.font })
	set("text", func() { cfg.Text = f.text })
	set("output", func() { cfg.Output = f.output })
	set("workers", func() { cfg.Workers = f.workers })
	set("precision", func() { cfg.Precision = f.precision })
	set("tension", func() { cfg.Params.Tension = f.tension })
	set("adjustment", func() { cfg.Params.Adjustment = f.adjustment })
	set("slant", func() { cfg.Params.Slant = f.slant })
	set("tolerance", func() { cfg.Solver.Tolerance = f.tolerance })
	set("max-iterations", func() { cfg.Solver.MaxIterations = f.maxIterations })
	text("distribution", f.distribution, &cfg.Params.Distribution)
	text("scale", f.scale, &cfg.Params.Scale)
	text("eccentricity", f.eccentricity, &cfg.Params.Eccentricity)
	text("scope", f.scope, &cfg.Params.Scope)
	if err != nil {
		return config{}, err
	}

	if f.param != "" {
		if err := customparam.Apply(&cfg.Params, f.param); err != nil {
			return config{}, err
		}
	}
	if err := cfg.Params.Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg config, verbose bool) (err error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	superellipse.SetLogger(log)
	defer superellipse.SetLogger(nil)

	if cfg.Font == "" {
		return errors.New("no font given, use --font or set font in the configuration")
	}
	data, err := os.ReadFile(cfg.Font)
	if err != nil {
		return err
	}
	font, err := outline.Parse(data)
	if err != nil {
		return err
	}
	glyphs, err := font.Glyphs(cfg.Text)
	if err != nil {
		return err
	}

	out, st, err := superellipse.TransformGlyphs(cmd.Context(), glyphs, cfg.Params, cfg.Solver, cfg.Workers)
	if err != nil {
		return err
	}
	log.Info("transformed glyphs",
		"glyphs", len(out),
		"params", customparam.Format(cfg.Params),
		"segments", st.Segments,
		"adjusted", st.Adjusted,
		"degenerate", st.Degenerate,
		"junctions", st.Junctions,
		"skipped junctions", st.SkippedJunctions)

	var w io.Writer = cmd.OutOrStdout()
	if cfg.Output != "-" && cfg.Output != "" {
		fh, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := fh.Close(); err == nil {
				err = cerr
			}
		}()
		w = fh
	}
	return outline.WriteSVG(w, out, outline.SVGOptions{
		Gap:          float64(font.UnitsPerEm()) / 10,
		MaxPrecision: cfg.Precision,
	})
}
