package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Parse and generate sentences interactively",
		Long: `repl reads sentences line by line and prints their readings.
Lines starting with a colon are commands:

  :generate <sentence>   generate all sentences for the readings of a sentence
  :engine <name>         switch to engine descent or leftcorner
  :start <name>          switch the start rule
  :trace <level>         set the trace level
  :grammar               show the grammar
  :quit                  leave the REPL`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	})
}

func runREPL(cmd *cobra.Command, args []string) error {
	s, err := newSession(*rootFlags.engine)
	if err != nil {
		return err
	}
	repl, err := readline.New("nlpg> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{session: s, repl: repl}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// Intp is our interpreter object.
type Intp struct {
	*session
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a single input line.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		values, err := intp.parse(line)
		if err != nil {
			return false, err
		}
		printReadings(values)
		return false, nil
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "q", "quit":
		return true, nil
	case "generate":
		sentences, err := intp.generate(arg)
		if err != nil {
			return false, err
		}
		for _, words := range sentences {
			pterm.Println(strings.Join(words, " "))
		}
	case "engine":
		return false, intp.selectEngine(arg)
	case "start":
		if !intp.rules.IsDefined(arg) {
			return false, fmt.Errorf("no rule named %q", arg)
		}
		intp.start = arg
	case "trace":
		tracing.Select("nlpg.engine").SetTraceLevel(tracing.TraceLevelFromString(arg))
	case "grammar":
		intp.printGrammar()
	default:
		return false, fmt.Errorf("unknown command :%s", cmd)
	}
	return false, nil
}
