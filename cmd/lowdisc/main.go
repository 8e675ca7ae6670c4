// lowdisc is a small command line front end for the sobol and qmc
// packages. It can stream the points of a configured Sobol sequence and
// run a pi-estimate demo comparing quasi- and pseudo-random sampling.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/lowdisc/qmc"
	"github.com/phil-mansfield/lowdisc/rand"
	"github.com/phil-mansfield/lowdisc/sobol"
)

const version = "0.1.0"

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

var (
	flagDim     int
	flagScheme  string
	flagSeed    uint64
	flagCount   int
	flagSkip    uint32
	flagSamples int
)

func newSequence() (*sobol.Sequence, error) {
	scheme, err := sobol.ParseScheme(flagScheme)
	if err != nil { return nil, err }
	return sobol.New(flagDim, scheme, flagSeed)
}

func runPoints(cmd *cobra.Command, args []string) error {
	seq, err := newSequence()
	if err != nil { return err }
	if flagSkip > 0 {
		if err := seq.SkipTo(flagSkip - 1); err != nil { return err }
	}

	log.Info().
		Int("dim", flagDim).
		Str("scheme", flagScheme).
		Uint32("skip", flagSkip).
		Int("count", flagCount).
		Msg("streaming sequence points")

	x := make([]float64, seq.Dimension())
	for i := 0; i < flagCount; i++ {
		if err := seq.NextAt(x); err != nil { return err }
		for k, c := range x {
			if k > 0 { fmt.Print(" ") }
			fmt.Printf("%.10g", c)
		}
		fmt.Println()
	}
	return nil
}

// quarterDisk is 4 inside the quarter unit disk and 0 outside, so its
// mean over [0,1)^2 is pi.
func quarterDisk(x []float64) float64 {
	if x[0]*x[0]+x[1]*x[1] < 1 { return 4 }
	return 0
}

func runPi(cmd *cobra.Command, args []string) error {
	scheme, err := sobol.ParseScheme(flagScheme)
	if err != nil { return err }
	seq, err := sobol.New(2, scheme, flagSeed)
	if err != nil { return err }

	quasi, err := qmc.Integrate(seq, quarterDisk, flagSamples)
	if err != nil { return err }

	gen := rand.New(rand.Xorshift, flagSeed)
	pseudo, err := qmc.Integrate(qmc.UniformSource(gen, 2), quarterDisk, flagSamples)
	if err != nil { return err }

	log.Info().
		Int("samples", flagSamples).
		Float64("sobol", quasi).
		Float64("sobol_error", math.Abs(quasi-math.Pi)).
		Float64("xorshift", pseudo).
		Float64("xorshift_error", math.Abs(pseudo-math.Pi)).
		Msg("pi estimates")

	fmt.Println(quasi)
	return nil
}

func main() {
	root := &cobra.Command{
		Use:           "lowdisc",
		Short:         "Low-discrepancy sequence utilities",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(
		&flagScheme, "scheme", "jaeckel", "initialization scheme",
	)
	root.PersistentFlags().Uint64Var(
		&flagSeed, "seed", 42,
		"seed for direction integers of untabulated dimensions",
	)

	points := &cobra.Command{
		Use:   "points",
		Short: "Print successive points of a Sobol sequence",
		RunE:  runPoints,
	}
	points.Flags().IntVar(&flagDim, "dim", 2, "dimensionality")
	points.Flags().IntVar(&flagCount, "count", 100, "number of points")
	points.Flags().Uint32Var(&flagSkip, "skip", 0, "points to skip first")

	pi := &cobra.Command{
		Use:   "pi",
		Short: "Estimate pi by quarter-disk integration",
		RunE:  runPi,
	}
	pi.Flags().IntVar(&flagSamples, "samples", 1<<16, "number of samples")

	root.AddCommand(points, pi)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("lowdisc failed")
		os.Exit(1)
	}
}
