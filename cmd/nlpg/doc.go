/*
Command nlpg is a command line tool for the example argumentation grammar.
It parses sentences into arguments and generates sentences from the results.

    nlpg parse Tweety can fly because Tweety is a bird .
    nlpg generate --engine leftcorner Tweety can fly because Tweety is a bird .
    nlpg grammar
    nlpg repl

Sentences are split into words at white space. With flag --lexer, a lexmachine
based tokenizer is used instead, which splits off punctuation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nlpg.cli'
func tracer() tracing.Trace {
	return tracing.Select("nlpg.cli")
}
