/*
Package argue is an example grammar for arguments in natural language, in the
style of Toulmin's model of argumentation:

    Tweety can fly because Tweety is a bird and animals can fly when they
    have wings unless they are a penguin .

An argument consists of a claim ("Tweety can fly"), supported by datums
("Tweety is a bird"), a warrant ("animals can fly"), conditions for the warrant
("they have wings") and exceptions ("they are a penguin").

Claims are runs of plain words between the markers of the grammar.
Sentences are tokenized with Tokenize, which groups them into units.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package argue

import (
	"github.com/npillmayer/nlpg"
	"github.com/npillmayer/nlpg/binding"
	"github.com/npillmayer/nlpg/grammar"
	"github.com/npillmayer/nlpg/scanner"
)

// Claim is a statement, i.e. a run of words.
type Claim struct {
	Text scanner.Text
}

// Argument is a claim with its supports.
type Argument struct {
	Claim    Claim
	Supports []Support
}

// Support is a reason for a claim.
type Support struct {
	Datums   []*Argument
	Warrant  *Warrant
	Rebuttal *Argument
}

// Warrant connects datums to a claim.
type Warrant struct {
	Claim      Claim
	Conditions []Condition
	Exceptions []Exception
}

// Condition is a condition for a warrant to hold.
type Condition struct {
	Claims []Claim
}

// Exception is a case in which a warrant does not hold.
type Exception struct {
	Claims []Claim
}

// Start is the name of the top-level rule.
const Start = "sentence"

// Grammar creates the argumentation grammar.
func Grammar() (*grammar.Ruleset, error) {
	b := grammar.NewBuilder("Arguments")
	b.LHS("sentence").N("argument").L(".").Bind(binding.Slot(0))
	list(b, "arguments", "argument", "and")
	b.LHS("argument").N("claim").N("supports?").Bind(binding.Struct(&Argument{},
		binding.At("Claim", 0), binding.At("Supports", 1)))
	b.LHS("claim").N("word").Bind(binding.Struct(Claim{}, binding.At("Text", 0)))
	list(b, "claims", "claim", "and")
	b.LHS("word").T("unit", scanner.UnitTerminal()).Bind(binding.Slot(0))
	b.LHS("supports?").Epsilon(binding.List())
	b.LHS("supports?").N("supports").Bind(binding.Slot(0))
	list(b, "supports", "support", "and")
	b.LHS("support").L("because").N("arguments").N("warrant?").N("rebuttal?").Bind(
		binding.Struct(Support{}, binding.At("Datums", 1), binding.At("Warrant", 2),
			binding.At("Rebuttal", 3)))
	b.LHS("rebuttal?").Epsilon(binding.Empty())
	b.LHS("rebuttal?").L("except").N("argument").Bind(binding.Slot(1))
	b.LHS("warrant?").Epsilon(binding.Empty())
	b.LHS("warrant?").L("and").N("warrant").Bind(binding.Slot(1))
	b.LHS("warrant").N("claim").N("conditions?").N("exceptions?").Bind(binding.Struct(&Warrant{},
		binding.At("Claim", 0), binding.At("Conditions", 1), binding.At("Exceptions", 2)))
	b.LHS("conditions?").Epsilon(binding.List())
	b.LHS("conditions?").L("if").N("conditions").Bind(binding.Slot(1))
	b.LHS("conditions?").L("when").N("conditions").Bind(binding.Slot(1))
	list(b, "conditions", "condition", "or")
	b.LHS("condition").N("claims").Bind(binding.Struct(Condition{}, binding.At("Claims", 0)))
	b.LHS("exceptions?").Epsilon(binding.List())
	b.LHS("exceptions?").L("unless").N("exceptions").Bind(binding.Slot(1))
	list(b, "exceptions", "exception", "or")
	b.LHS("exception").N("claims").Bind(binding.Struct(Exception{}, binding.At("Claims", 0)))
	return b.Ruleset()
}

// list adds rules for a non-empty list of items, separated by a marker:
//
//    name -> item
//    name -> item sep name
//
func list(b *grammar.Builder, name, item, sep string) {
	b.LHS(name).N(item).Bind(binding.List(0))
	b.LHS(name).N(item).L(sep).N(name).Bind(binding.List(0).WithTail(2))
}

// Tokenize splits a sentence into tokens for a grammar, see scanner.Tokenize.
func Tokenize(rs *grammar.Ruleset, sentence string) []nlpg.Token {
	return scanner.Tokenize(rs.Markers(), sentence)
}
