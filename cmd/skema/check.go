package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	"github.com/reoring/skema/internal/cli"
)

var (
	checkPath     string
	checkFailFast bool
	checkAbsent   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [VALUE]",
	Short: "Validate one value",
	Long: `Validates VALUE, or stdin when VALUE is omitted or "-". Use --absent to
validate a missing value. Exits non-zero when the value is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkPath, "path", "", "JSON Pointer reported in issues")
	checkCmd.Flags().BoolVar(&checkFailFast, "fail-fast", false, "stop at the first failing test")
	checkCmd.Flags().BoolVar(&checkAbsent, "absent", false, "validate an absent value")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	checker, err := buildChecker(cmd)
	if err != nil {
		return err
	}
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, verr := checker.Check(cmd.Context(), in, skema.ValidateOpt{Path: checkPath, FailFast: checkFailFast})
	w := cmd.OutOrStdout()
	if iss, ok := skema.AsIssues(verr); ok {
		printIssues(w, iss)
		return fmt.Errorf("%d issue(s)", len(iss))
	}
	if verr != nil {
		return verr
	}
	b, err := json.Marshal(jsonValue(out))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", color.GreenString("ok"), b)
	return nil
}

func readInput(cmd *cobra.Command, args []string) (any, error) {
	if checkAbsent {
		return skema.Undefined, nil
	}
	var data []byte
	if len(args) == 1 && args[0] != "-" {
		data = []byte(args[0])
	} else {
		var err error
		if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return nil, err
		}
	}
	return cli.Decode(data, opts.InputFormat)
}

func printIssues(w io.Writer, iss skema.Issues) {
	for _, it := range iss {
		fmt.Fprintf(w, "%s %s %s: %s\n",
			color.RedString("fail"),
			color.YellowString(it.Code),
			it.Path,
			it.Message)
		if len(it.Params) > 0 {
			kv := make([]string, 0, len(it.Params))
			for k, v := range it.Params {
				kv = append(kv, k+"="+i18n.Stringify(v))
			}
			slices.Sort(kv)
			fmt.Fprintf(w, "     %s\n", color.HiBlackString(strings.Join(kv, " ")))
		}
	}
}

func jsonValue(v any) any {
	if skema.IsUndefined(v) {
		return nil
	}
	return v
}
