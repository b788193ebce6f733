package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TomTonic/tinyrng"
)

const (
	variantXorshift = "xorshift128+"
	variantPCG      = "pcg32"
	variantLCG      = "lcg32"
)

func newSource(variant string, seed uint64) (tinyrng.Source, error) {
	switch strings.ToLower(variant) {
	case variantXorshift, "xorshift128plus", "xorshift":
		return tinyrng.NewXorshift128Plus(seed), nil
	case variantPCG, "pcg":
		return tinyrng.NewPCG32(seed), nil
	case variantLCG, "lcg":
		return tinyrng.NewLCG32(seed), nil
	}
	return nil, fmt.Errorf("unknown variant %q: want %s, %s or %s", variant, variantXorshift, variantPCG, variantLCG)
}

var (
	diceSides uint32
	diceCount int
)

var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Throw dice",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if diceSides == 0 {
			return fmt.Errorf("--sides must be at least 1")
		}
		if diceCount < 0 {
			return fmt.Errorf("--count must not be negative")
		}
		g, err := generator()
		if err != nil {
			return err
		}
		throws := make([]string, diceCount)
		for i := range throws {
			throws[i] = fmt.Sprint(1 + tinyrng.Uint32N(g, diceSides))
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(throws, " "))
		return nil
	},
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle ITEM...",
	Short: "Print the arguments in random order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := generator()
		if err != nil {
			return err
		}
		tinyrng.Shuffle(g, args)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(args, " "))
		return nil
	},
}

var bytesCount int

var bytesCmd = &cobra.Command{
	Use:   "bytes",
	Short: "Print pseudo-random bytes as hex",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if bytesCount < 0 {
			return fmt.Errorf("--count must not be negative")
		}
		g, err := generator()
		if err != nil {
			return err
		}
		buf := make([]byte, bytesCount)
		tinyrng.Fill(g, buf)
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
		return nil
	},
}

var (
	streamCount int
	streamKind  string
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Print a sequence of raw or float values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := generator()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		switch streamKind {
		case "u32":
			for _, x := range tinyrng.Take(g, tinyrng.Uint32, streamCount) {
				fmt.Fprintf(out, "0x%08x\n", x)
			}
		case "u64":
			for _, x := range tinyrng.Take(g, tinyrng.Uint64, streamCount) {
				fmt.Fprintf(out, "0x%016x\n", x)
			}
		case "f64":
			for _, x := range tinyrng.Take(g, tinyrng.Float64, streamCount) {
				fmt.Fprintln(out, x)
			}
		default:
			return fmt.Errorf("unknown --kind %q: want u32, u64 or f64", streamKind)
		}
		return nil
	},
}

var (
	checkBound   uint32
	checkSamples int
	checkAlpha   float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Chi-square test of bounded sampling",
	Long: `Draw --samples values in [0, --bound) and test the counts for uniformity.
The LCG32 variant samples with a biased multiply-high and may be rejected for large bounds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkBound == 0 {
			return fmt.Errorf("--bound must be at least 1")
		}
		g, err := generator()
		if err != nil {
			return err
		}
		counts := tinyrng.Histogram(g, checkBound, checkSamples)
		res := tinyrng.ChiSquareUniformity(counts)
		ev := log.Info()
		if res.Rejected(checkAlpha) {
			ev = log.Warn()
		}
		ev.Uint32("bound", checkBound).
			Int("samples", checkSamples).
			Float64("chi2", res.ChiSquare).
			Int("df", res.DegreesOfFreedom).
			Float64("p", res.PValue).
			Bool("rejected", res.Rejected(checkAlpha)).
			Msg("uniformity")
		fmt.Fprintf(cmd.OutOrStdout(), "chi2=%.3f df=%d p=%.4f\n", res.ChiSquare, res.DegreesOfFreedom, res.PValue)
		return nil
	},
}

func init() {
	diceCmd.Flags().Uint32Var(&diceSides, "sides", 6, "number of sides")
	diceCmd.Flags().IntVar(&diceCount, "count", 1, "number of throws")
	bytesCmd.Flags().IntVar(&bytesCount, "count", 16, "number of bytes")
	streamCmd.Flags().IntVar(&streamCount, "count", 10, "number of values")
	streamCmd.Flags().StringVar(&streamKind, "kind", "u32", "u32, u64 or f64")
	checkCmd.Flags().Uint32Var(&checkBound, "bound", 7, "exclusive upper bound")
	checkCmd.Flags().IntVar(&checkSamples, "samples", 1_000_000, "number of draws")
	checkCmd.Flags().Float64Var(&checkAlpha, "alpha", 0.01, "significance level")
}
