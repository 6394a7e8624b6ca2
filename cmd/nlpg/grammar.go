package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "grammar",
		Short: "Show the rules of the argument grammar",
		Args:  cobra.NoArgs,
		RunE:  runGrammar,
	})
}

func runGrammar(cmd *cobra.Command, args []string) error {
	s, err := newSession(*rootFlags.engine)
	if err != nil {
		return err
	}
	s.printGrammar()
	return nil
}

func (s *session) printGrammar() {
	rs := s.rules
	data := [][]string{{"#", "Name", "Symbols"}}
	for _, r := range rs.Rules() {
		data = append(data, []string{fmt.Sprint(r.Serial), r.Name, symbols(r.String())})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("defined:     %s", strings.Join(rs.Defined(), " ")))
	pterm.Info.Println(fmt.Sprintf("markers:     %s", strings.Join(rs.Markers(), " ")))
	if u := rs.Unreachable(s.start); len(u) > 0 {
		pterm.Info.Println(fmt.Sprintf("unreachable: %s", strings.Join(u, " ")))
	}
}

// symbols strips the left hand side from a rule string.
func symbols(rule string) string {
	if _, rhs, ok := strings.Cut(rule, "::="); ok {
		return strings.TrimSpace(rhs)
	}
	return rule
}
