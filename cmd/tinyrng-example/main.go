package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TomTonic/tinyrng"
)

var log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
	w.Out = os.Stderr
	w.TimeFormat = "15:04:05.000"
})).With().Timestamp().Logger()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tinyrng-example",
	Short: "Play with the tinyrng generators.",
	Long: `Play with the tinyrng generators. Not for cryptographic use.
For example:
  tinyrng-example dice --sides=6 --count=10 --seed=0
  tinyrng-example shuffle red green blue --variant=pcg32
  TINYRNG_VARIANT=lcg32 tinyrng-example check --bound=7`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if viper.GetBool("verbose") {
			level = zerolog.DebugLevel
		}
		log = log.Level(level)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("variant", variantXorshift, "generator: xorshift128+, pcg32 or lcg32")
	flags.Uint64("seed", 0, "seed (default: derived from the clock)")
	flags.Bool("entropy", false, "seed from the operating system's entropy source")
	flags.BoolP("verbose", "v", false, "log debug messages")
	for _, name := range []string{"variant", "seed", "entropy", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("tinyrng")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(diceCmd, shuffleCmd, bytesCmd, streamCmd, checkCmd)
}

// generator builds the generator selected by flags and environment.
func generator() (tinyrng.Source, error) {
	var src tinyrng.SeedSource = tinyrng.ClockSeed{}
	switch {
	case viper.IsSet("seed"):
		src = tinyrng.FixedSeed(viper.GetUint64("seed"))
	case viper.GetBool("entropy"):
		src = tinyrng.EntropySeed{}
	}
	seed := src.Seed()
	variant := viper.GetString("variant")
	g, err := newSource(variant, seed)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("variant", variant).Uint64("seed", seed).Msg("generator ready")
	return g, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("")
		fmt.Fprintln(os.Stderr, "run with --help for usage")
		os.Exit(1)
	}
}
