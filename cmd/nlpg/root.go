package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/descent"
	"github.com/npillmayer/nlpg/grammar"
	"github.com/npillmayer/nlpg/internal/argue"
	"github.com/npillmayer/nlpg/leftcorner"
	"github.com/npillmayer/nlpg/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	engine *string
	start  *string
	trace  *string
	lexer  *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "nlpg",
	Short: "Parse and generate arguments in natural language",
	Long: `nlpg provides two features over an example grammar for arguments:
- Parses sentences into argument structures, enumerating all readings.
- Generates all sentences for an argument structure.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.engine = rootCmd.PersistentFlags().StringP("engine", "e", "descent", "parsing strategy [descent|leftcorner]")
	rootFlags.start = rootCmd.PersistentFlags().StringP("start", "s", argue.Start, "start rule")
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.lexer = rootCmd.PersistentFlags().Bool("lexer", false, "use the lexmachine tokenizer")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// setup configures tracing and the terminal display.
func setup(cmd *cobra.Command, args []string) error {
	trace := gologadapter.New()
	trace.SetTraceLevel(tracing.TraceLevelFromString(*rootFlags.trace))
	tracing.SetTraceSelector(mytrace{tracer: trace})
	initDisplay()
	return nil
}

type mytrace struct {
	tracer tracing.Trace
}

func (t mytrace) Select(string) tracing.Trace {
	return t.tracer
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// session bundles the grammar, an engine and a tokenizer.
type session struct {
	rules  *grammar.Ruleset
	engine nlpg.Engine
	start  string
	lexer  *lexmach.LMAdapter // nil for the default tokenizer
}

func newSession(engine string) (*session, error) {
	rs, err := argue.Grammar()
	if err != nil {
		return nil, err
	}
	s := &session{rules: rs, start: *rootFlags.start}
	if err = s.selectEngine(engine); err != nil {
		return nil, err
	}
	if *rootFlags.lexer {
		if s.lexer, err = lexmach.NewMarkerAdapter(rs.Markers()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *session) selectEngine(name string) error {
	var err error
	switch name {
	case "descent":
		s.engine, err = descent.NewEngine(s.rules)
	case "leftcorner":
		s.engine, err = leftcorner.NewEngine(s.rules)
	default:
		return fmt.Errorf("unknown engine %q, use descent or leftcorner", name)
	}
	if err == nil {
		tracer().Infof("using %s engine", name)
	}
	return err
}

func (s *session) tokenize(sentence string) ([]nlpg.Token, error) {
	if s.lexer != nil {
		return s.lexer.Tokenize(sentence)
	}
	return argue.Tokenize(s.rules, sentence), nil
}

// parse collects all readings of a sentence.
func (s *session) parse(sentence string) ([]any, error) {
	tokens, err := s.tokenize(sentence)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("tokens: %v", tokens)
	return nlpg.All(s.engine.Parse(s.start, tokens))
}

func sentence(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
