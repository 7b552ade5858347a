package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/louvain/graphview"
	"github.com/katalvlaran/louvain/optimiser"
	"github.com/katalvlaran/louvain/partition"
	"github.com/katalvlaran/louvain/rng"
)

var variantByName = map[string]partition.Variant{
	"modularity":   partition.Modularity,
	"rbconfig":     partition.RBConfiguration,
	"rber":         partition.RBER,
	"cpm":          partition.CPM,
	"significance": partition.Significance,
	"surprise":     partition.Surprise,
	"generalised":  partition.GeneralisedModularity,
}

// variantFlag implements pflag.Value so "--variant" is validated at parse
// time instead of deep inside RunE.
type variantFlag struct {
	name    string
	variant partition.Variant
}

func (f *variantFlag) String() string { return f.name }
func (f *variantFlag) Type() string   { return "variant" }
func (f *variantFlag) Set(raw string) error {
	v, ok := variantByName[raw]
	if !ok {
		return fmt.Errorf("unknown variant %q (want one of modularity, rbconfig, rber, cpm, significance, surprise, generalised)", raw)
	}
	f.name = raw
	f.variant = v

	return nil
}

var _ pflag.Value = (*variantFlag)(nil)

// envUint64Default reads name from the environment (populated by godotenv.Load
// in main, if a .env file was present) and falls back to def on absence or
// parse failure.
func envUint64Default(name string, def uint64) uint64 {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return def
	}

	return v
}

func envFloat64Default(name string, def float64) float64 {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}

	return v
}

func newRootCmd(log logr.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "louvain",
		Short:         "Multi-level community detection over a CSV edge list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(log))
	root.AddCommand(newSeedCmd())

	return root
}

func newRunCmd(log logr.Logger) *cobra.Command {
	var (
		input      string
		output     string
		variant    = variantFlag{name: "modularity", variant: partition.Modularity}
		resolution float64
		directed   bool
		seed       uint64
		trace      bool
		eps        float64
		delta      float64
		maxItr     int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a CSV edge list and run the optimiser to convergence",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readEdgeListCSV(input, directed)
			if err != nil {
				return err
			}
			log.Info("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount())

			gv, err := graphview.New(g, false)
			if err != nil {
				return fmt.Errorf("build graph view: %w", err)
			}

			p, err := partition.NewSingleton(variant.variant, gv, partition.WithResolution(resolution))
			if err != nil {
				return fmt.Errorf("seed partition: %w", err)
			}

			opt := optimiser.New()
			opt.Eps = eps
			opt.Delta = delta
			opt.MaxItr = maxItr

			final, quality, err := opt.Optimise(p, rng.New(seed))
			if err != nil {
				return fmt.Errorf("optimise: %w", err)
			}
			log.Info("converged", "communities", final.NumComms(), "quality", quality)

			rep := newReport(variant.name, resolution, seed, g.Vertices(), final, trace)

			return rep.writeTo(output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "path to a CSV edge list (required)")
	flags.StringVarP(&output, "output", "o", "-", "path to write the JSON report (\"-\" for stdout)")
	flags.Var(&variant, "variant", "quality function: modularity, rbconfig, rber, cpm, significance, surprise, generalised")
	flags.Float64Var(&resolution, "resolution", 1.0, "resolution parameter (ignored for modularity)")
	flags.BoolVar(&directed, "directed", false, "treat the edge list as directed")
	flags.Uint64Var(&seed, "seed", envUint64Default("LOUVAIN_SEED", 0), "RNG seed; overrides LOUVAIN_SEED")
	flags.BoolVar(&trace, "trace", false, "tag the report with a UUID run ID")
	flags.Float64Var(&eps, "eps", envFloat64Default("LOUVAIN_EPS", optimiser.New().Eps), "minimum improvement to continue a pass; overrides LOUVAIN_EPS")
	flags.Float64Var(&delta, "delta", envFloat64Default("LOUVAIN_DELTA", optimiser.New().Delta), "minimum move fraction to continue a pass; overrides LOUVAIN_DELTA")
	flags.IntVar(&maxItr, "max-itr", optimiser.New().MaxItr, "maximum passes per level")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print a fresh RNG seed suitable for \"run --seed\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), uint64(time.Now().UnixNano()))

			return nil
		},
	}
}
