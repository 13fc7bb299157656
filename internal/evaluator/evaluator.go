package evaluator

import (
	"fmt"
	"log/slog"

	"github.com/funvibe/lispy/internal/config"
	"github.com/funvibe/lispy/internal/token"
)

// Evaluator is a strict, single-threaded tree-walking evaluator. It holds
// no program state of its own: all bindings live in the Environment passed
// to Eval.
type Evaluator struct {
	// Scoping decides what scope a lambda captures when it is evaluated.
	Scoping config.Scoping
	// Logger receives debug records for closure applications. Nil
	// disables logging.
	Logger *slog.Logger
}

func New() *Evaluator {
	return &Evaluator{Scoping: config.ScopingLexical}
}

// Eval evaluates expr in env. On error env is left at the same depth it
// had on entry.
func (e *Evaluator) Eval(expr Value, env *Environment) (Value, error) {
	switch expr := expr.(type) {
	case *Number, *Boolean, *Nil, *Closure:
		return expr, nil
	case *Symbol:
		return e.evalSymbol(expr, env)
	case *Pair:
		return e.evalApplication(expr, env)
	}
	panic(fmt.Sprintf("evaluator: unknown value type %T", expr))
}

func (e *Evaluator) evalSymbol(sym *Symbol, env *Environment) (Value, error) {
	switch sym.Name {
	case config.TrueKeyword:
		return NewBoolean(true, sym.Span), nil
	case config.FalseKeyword:
		return NewBoolean(false, sym.Span), nil
	case config.NilKeyword:
		return NewNil(sym.Span), nil
	}
	if val, ok := env.Lookup(sym.Name); ok {
		return val, nil
	}
	return nil, &Error{Kind: SymbolNotFound, Name: sym.Name, Span: sym.Span}
}

// evalApplication dispatches (head args...): special forms first, then
// primitives, then closures bound in the environment.
func (e *Evaluator) evalApplication(form *Pair, env *Environment) (Value, error) {
	head, isSymbol := form.Car.(*Symbol)
	if isSymbol {
		if sf, ok := LookupSpecialForm(head.Name); ok {
			return e.evalSpecialForm(sf, form, env)
		}
	}

	args, err := listToSlice(form.Cdr)
	if err != nil {
		return nil, err
	}
	if isSymbol {
		return e.applyNamed(head, form, args, env)
	}

	callee, err := e.Eval(form.Car, env)
	if err != nil {
		return nil, err
	}
	switch callee := callee.(type) {
	case *Closure:
		vals, err := e.evalArgs(args, env)
		if err != nil {
			return nil, err
		}
		return e.applyClosure(callee, form, vals, env)
	case *Symbol:
		return e.applyNamed(callee, form, args, env)
	}
	return nil, newError(CarNotApplicable, form.Car.Pos())
}

// applyNamed applies the primitive or bound closure called name.
func (e *Evaluator) applyNamed(name *Symbol, form *Pair, args []Value, env *Environment) (Value, error) {
	if prim, ok := LookupPrimitive(name.Name); ok {
		vals, err := e.evalArgs(args, env)
		if err != nil {
			return nil, err
		}
		return applyPrimitive(prim, form, vals)
	}

	fn, ok := env.Lookup(name.Name)
	if !ok {
		return nil, newError(CarNotApplicable, name.Span)
	}
	closure, ok := fn.(*Closure)
	if !ok {
		return nil, newError(CarNotApplicable, name.Span)
	}
	vals, err := e.evalArgs(args, env)
	if err != nil {
		return nil, err
	}
	return e.applyClosure(closure, form, vals, env)
}

// evalArgs evaluates argument expressions left to right.
func (e *Evaluator) evalArgs(args []Value, env *Environment) ([]Value, error) {
	vals := make([]Value, len(args))
	for i, arg := range args {
		val, err := e.Eval(arg, env)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}

// listToSlice flattens a proper list. An improper tail is reported as
// InvalidArguments at the tail.
func listToSlice(list Value) ([]Value, error) {
	var out []Value
	for {
		switch node := list.(type) {
		case *Nil:
			return out, nil
		case *Pair:
			out = append(out, node.Car)
			list = node.Cdr
		default:
			return nil, invalidArguments(list.Pos(), "improper argument list")
		}
	}
}

// NewList builds a proper list from vals. The pairs share span.
func NewList(vals []Value, span token.Span) Value {
	var list Value = NewNil(span)
	for i := len(vals) - 1; i >= 0; i-- {
		list = NewPair(vals[i], list, span)
	}
	return list
}
