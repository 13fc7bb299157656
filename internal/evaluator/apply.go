package evaluator

import (
	"errors"
	"log/slog"
)

// applyClosure binds vals to the closure's parameters in a fresh scope and
// evaluates the body there. The scope is released on every exit path.
//
// Runtime errors from the body are reported at the call form: the body may
// come from an earlier input, so its own offsets mean nothing against the
// line being evaluated.
func (e *Evaluator) applyClosure(fn *Closure, form *Pair, vals []Value, env *Environment) (Value, error) {
	if len(vals) != len(fn.Params) {
		return nil, invalidArguments(form.Span, "expected %d arguments, got %d", len(fn.Params), len(vals))
	}

	if fn.Scope == NoScope {
		env.Enclose()
	} else {
		env.EncloseAt(fn.Scope)
	}
	defer env.Disclose()

	for i, name := range fn.Params {
		env.Define(name, vals[i])
	}

	if e.Logger != nil {
		e.Logger.Debug("apply", slog.String("closure", fn.Inspect()), slog.Int("depth", env.Depth()))
	}
	val, err := e.Eval(fn.Body, env)
	if err != nil {
		var evalErr *Error
		if errors.As(err, &evalErr) {
			evalErr.Span = form.Span
		}
		return nil, err
	}
	return val, nil
}
