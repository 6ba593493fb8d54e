// Package main provides the dense demo and micro-benchmark command.
//
// It builds a pair of tensors, runs the element-wise operation set over
// them and logs per-operation timings as structured events.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dense-ml/dense/tensor"
)

const version = "v0.1.0-dev"

func main() {
	var (
		n       = flag.Int("n", 1_000_000, "elements per operand")
		rounds  = flag.Int("rounds", 3, "timing rounds per operation")
		pretty  = flag.Bool("pretty", true, "human-friendly console output")
		showVer = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if *showVer {
		log.Info().Str("version", version).Msg("dense")
		return
	}

	a, err := tensor.Arange[float64](0, float64(*n), 1)
	if err != nil {
		log.Fatal().Err(err).Msg("build left operand")
	}
	b := a.AddScalar(1) // shift by one so every divisor is nonzero

	log.Info().
		Str("dtype", "float64").
		Int("size", a.Size()).
		Ints("shape", []int(a.Shape())).
		Msg("operands ready")

	bench(log, "add", *rounds, func() error { _, err := a.Add(b); return err })
	bench(log, "sub", *rounds, func() error { _, err := a.Sub(b); return err })
	bench(log, "mul", *rounds, func() error { _, err := a.Mul(b); return err })
	bench(log, "div", *rounds, func() error { _, err := a.Div(b); return err })
	bench(log, "addScalar", *rounds, func() error { a.AddScalar(3); return nil })
	bench(log, "mulScalar", *rounds, func() error { a.MulScalar(3); return nil })
	bench(log, "sqrt", *rounds, func() error { a.Sqrt(); return nil })
	bench(log, "square", *rounds, func() error { a.Square(); return nil })
	bench(log, "sin", *rounds, func() error { a.Sin(); return nil })
	bench(log, "round", *rounds, func() error { a.Round(); return nil })

	// Small showcase of indexing and comparisons.
	m, err := tensor.FromSliceShape([]float64{0, 1, 2, 3, 4, 5}, tensor.Shape{3, 2})
	if err != nil {
		log.Fatal().Err(err).Msg("build matrix")
	}
	row, err := m.Get(1)
	if err != nil {
		log.Fatal().Err(err).Msg("extract row")
	}
	gt, err := b.Greater(a)
	if err != nil {
		log.Fatal().Err(err).Msg("compare")
	}
	log.Info().
		Str("matrix", m.String()).
		Str("row1", row.String()).
		Bool("b_dominates_a", gt).
		Msg("showcase")
}

// bench runs f rounds times and logs the fastest wall-clock duration.
func bench(log zerolog.Logger, op string, rounds int, f func() error) {
	best := time.Duration(0)
	for i := 0; i < rounds; i++ {
		start := time.Now()
		if err := f(); err != nil {
			log.Fatal().Err(err).Str("op", op).Msg("operation failed")
		}
		d := time.Since(start)
		if best == 0 || d < best {
			best = d
		}
	}
	log.Info().Str("op", op).Dur("best", best).Int("rounds", rounds).Msg("timed")
}
