package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	describeFormat     string
	describeJSONSchema bool
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the schema built from flags",
	Long:  `Prints the schema description, or its JSON Schema projection with --jsonschema.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := buildChecker(cmd)
		if err != nil {
			return err
		}
		var b []byte
		if describeJSONSchema {
			s, err := checker.JSONSchema()
			if err != nil {
				return err
			}
			if describeFormat == "yaml" {
				b, err = s.YAML()
			} else {
				b, err = s.JSON()
			}
			if err != nil {
				return err
			}
		} else {
			d := checker.Describe()
			if describeFormat == "yaml" {
				b, err = yaml.Marshal(d)
			} else {
				b, err = json.MarshalIndent(d, "", "  ")
			}
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	describeCmd.Flags().StringVarP(&describeFormat, "output", "o", "json", "output format: json, yaml")
	describeCmd.Flags().BoolVar(&describeJSONSchema, "jsonschema", false, "print the JSON Schema projection")
	rootCmd.AddCommand(describeCmd)
}
