package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseFlags = struct {
	yaml *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <sentence>",
		Short:   "Parse a sentence into arguments",
		Example: `  nlpg parse Tweety can fly because Tweety is a bird .`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runParse,
	}
	parseFlags.yaml = cmd.Flags().Bool("yaml", false, "print results as YAML documents")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := newSession(*rootFlags.engine)
	if err != nil {
		return err
	}
	values, err := s.parse(sentence(args))
	if err != nil {
		return err
	}
	if *parseFlags.yaml {
		return writeYAML(values)
	}
	printReadings(values)
	return nil
}

func printReadings(values []any) {
	pterm.Info.Println(fmt.Sprintf("%d reading(s)", len(values)))
	for i, v := range values {
		printTree(fmt.Sprintf("reading %d", i+1), v)
	}
}

// writeYAML prints one YAML document per result.
func writeYAML(values []any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
