package main

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/nlpg"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate <sentence>",
		Short: "Generate all sentences expressing the arguments of a sentence",
		Long: `generate parses a sentence and generates every sentence for each of
the resulting arguments. Sentences realised by more than one reading are
listed once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runGenerate,
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := newSession(*rootFlags.engine)
	if err != nil {
		return err
	}
	sentences, err := s.generate(sentence(args))
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%d sentence(s)", len(sentences)))
	for _, words := range sentences {
		pterm.Println(strings.Join(words, " "))
	}
	return nil
}

type realisation struct {
	Words []string
}

// generate parses a sentence and reverses every reading. Realisations are
// returned in order of generation, without duplicates.
func (s *session) generate(sentence string) ([][]string, error) {
	values, err := s.parse(sentence)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var sentences [][]string
	for _, v := range values {
		for tokens, err := range s.engine.Reverse(s.start, v) {
			if err != nil {
				return nil, err
			}
			words := nlpg.Lexemes(tokens)
			hash, err := structhash.Hash(realisation{Words: words}, 1)
			if err != nil {
				return nil, err
			}
			if seen[hash] {
				tracer().Debugf("duplicate realisation %v", words)
				continue
			}
			seen[hash] = true
			sentences = append(sentences, words)
		}
	}
	return sentences, nil
}
