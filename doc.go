/*
Package nlpg is a bidirectional grammar toolbox for natural language
argumentation parsers.

A grammar is a set of declarative rules. Every rule carries a binder, which
converts between the positional values matched by the rule's symbols and an
arbitrary typed domain value. Because binders work in both directions, the same
grammar may be used to parse a token sequence into domain values (enumerating
every ambiguous derivation) and to generate every token sequence a given domain
value could have been parsed from.

Package structure is as follows:

■ grammar: Package grammar implements the grammar model (symbols, rules, rulesets)
together with a builder for rulesets.

■ binding: Package binding implements the binders (struct templates, slots, lists
and empties) attached to rules.

■ sparse: Package sparse implements a write-once positional container used during
generation.

■ descent: Package descent implements a recursive-descent backtracking parser and
the reverse generator.

■ leftcorner: Package leftcorner implements an alternative parser over the same
grammars, using a left-corner stack automaton.

■ scanner: Package scanner splits raw text into tokens, honouring a grammar's markers.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nlpg
