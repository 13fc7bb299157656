package evaluator

import "github.com/funvibe/lispy/internal/token"

type ValueType string

const (
	NUMBER_VAL  = "NUMBER"
	BOOLEAN_VAL = "BOOLEAN"
	NIL_VAL     = "NIL"
	SYMBOL_VAL  = "SYMBOL"
	PAIR_VAL    = "PAIR"
	CLOSURE_VAL = "CLOSURE"
)

// Value is both the program representation and the runtime result.
// Values are immutable once built, so pairs may share structure.
//
// Pos is source metadata for diagnostics only; it never takes part in
// equality.
type Value interface {
	Type() ValueType
	Inspect() string
	Pos() token.Span
}
