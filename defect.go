package nlpg

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Defect reports a defect of a grammar, found by an engine during a parse or
// during generation, and returns err.
//
// If configuration flag panic-on-grammar-defect is set, Defect will panic
// instead. This is aimed at helping to debug a grammar.
func Defect(err error) error {
	tracing.Select("nlpg.engine").Errorf("grammar defect: %v", err)
	if gconf.GetBool("panic-on-grammar-defect") {
		panic(`grammar defect.

Configuration flag panic-on-grammar-defect is set to true. It is aimed at helping
to debug a grammar and do a post-mortem of a broken binder or rule. However, if
this is a production environment and you did not expect this to panic, please
unset panic-on-grammar-defect to its default (false).

` + err.Error())
	}
	return err
}
