package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	"github.com/reoring/skema/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "skema",
	Short: "Validate and coerce values against a schema built from flags",
	Long: `skema builds a schema from command-line flags and validates a single value
read from the argument list or stdin, printing the coerced value or the issues.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		skema.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger())
		lang, _ := cmd.Flags().GetString("lang")
		i18n.SetLanguage(lang)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var opts cli.Options

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Bool("verbose", false, "log engine debug events to stderr")
	pf.String("lang", "en", "message language (en, ja)")

	pf.StringVarP(&opts.Kind, "kind", "k", "bool", "schema kind: bool, string, number, mixed")
	pf.BoolVar(&opts.Required, "required", false, "reject absent values (and null unless --nullable)")
	pf.BoolVar(&opts.Defined, "defined", false, "reject absent values only")
	pf.BoolVar(&opts.Nullable, "nullable", false, "accept null")
	pf.BoolVar(&opts.NotRequired, "not-required", false, "accept absent and null values")
	pf.BoolVar(&opts.Strict, "strict", false, "skip coercion and defaults")
	pf.StringVar(&opts.Label, "label", "", "label used in messages")
	pf.StringVar(&opts.Default, "default", "", "default for absent input, in --input-format")
	pf.StringVarP(&opts.InputFormat, "input-format", "f", cli.FormatJSON, "input format: json, yaml, raw")
	pf.BoolVar(&opts.IsTrue, "is-true", false, "bool: only accept true")
	pf.BoolVar(&opts.IsFalse, "is-false", false, "bool: only accept false")
	pf.StringVar(&opts.Matches, "matches", "", "string: regular expression to match")
	pf.StringSliceVar(&opts.OneOf, "one-of", nil, "accepted values")
	pf.StringVar(&opts.Expr, "expr", "", "expression that must hold for the value, e.g. 'value > 3'")
	pf.Float64("min", 0, "number: minimum; string: minimum length")
	pf.Float64("max", 0, "number: maximum; string: maximum length")
}

// buildChecker resolves the bound flags into a schema.
func buildChecker(cmd *cobra.Command) (cli.Checker, error) {
	o := opts
	if cmd.Flags().Changed("min") {
		v, _ := cmd.Flags().GetFloat64("min")
		o.Min = &v
	}
	if cmd.Flags().Changed("max") {
		v, _ := cmd.Flags().GetFloat64("max")
		o.Max = &v
	}
	return cli.Build(o)
}
