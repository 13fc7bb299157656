package evaluator

import "github.com/funvibe/lispy/internal/config"

// SpecialForm is an application whose arguments are passed unevaluated.
type SpecialForm int

const (
	FormQuote SpecialForm = iota
	FormLambda
	FormDefine
	FormIf
)

var specialForms = map[string]SpecialForm{
	config.QuoteForm:  FormQuote,
	config.LambdaForm: FormLambda,
	config.DefineForm: FormDefine,
	config.IfForm:     FormIf,
}

// LookupSpecialForm resolves a head symbol name to a special form.
func LookupSpecialForm(name string) (SpecialForm, bool) {
	sf, ok := specialForms[name]
	return sf, ok
}

// evalSpecialForm runs a special form. Quote is stored as (quote . X), so
// it yields the whole tail; the other forms take a proper argument list.
func (e *Evaluator) evalSpecialForm(sf SpecialForm, form *Pair, env *Environment) (Value, error) {
	if sf == FormQuote {
		return form.Cdr, nil
	}

	args, err := listToSlice(form.Cdr)
	if err != nil {
		return nil, err
	}
	switch sf {
	case FormLambda:
		return e.evalLambda(form, args, env)
	case FormDefine:
		return e.evalDefine(form, args, env)
	case FormIf:
		return e.evalIf(form, args, env)
	}
	panic("evaluator: unhandled special form")
}

// (lambda (params...) body)
func (e *Evaluator) evalLambda(form *Pair, args []Value, env *Environment) (Value, error) {
	if len(args) != 2 {
		return nil, invalidArguments(form.Span, "lambda expects a parameter list and a body, got %d arguments", len(args))
	}
	paramList, err := listToSlice(args[0])
	if err != nil {
		return nil, err
	}
	params := make([]string, len(paramList))
	for i, p := range paramList {
		sym, ok := p.(*Symbol)
		if !ok {
			return nil, invalidArguments(p.Pos(), "lambda parameter must be a symbol, got %s", p.Inspect())
		}
		params[i] = sym.Name
	}

	scope := NoScope
	if e.Scoping == config.ScopingLexical {
		scope = env.Capture()
	}
	return &Closure{Params: params, Body: args[1], Scope: scope, Span: form.Span}, nil
}

// (define name expr)
func (e *Evaluator) evalDefine(form *Pair, args []Value, env *Environment) (Value, error) {
	if len(args) != 2 {
		return nil, invalidArguments(form.Span, "define expects a name and a value, got %d arguments", len(args))
	}
	name, ok := args[0].(*Symbol)
	if !ok {
		return nil, invalidArguments(args[0].Pos(), "define name must be a symbol, got %s", args[0].Inspect())
	}
	val, err := e.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Define(name.Name, val)
	return NewNil(form.Span), nil
}

// (if cond then else); only the chosen branch is evaluated.
func (e *Evaluator) evalIf(form *Pair, args []Value, env *Environment) (Value, error) {
	if len(args) != 3 {
		return nil, invalidArguments(form.Span, "if expects a condition and two branches, got %d arguments", len(args))
	}
	cond, err := e.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*Boolean)
	if !ok {
		return nil, invalidArguments(args[0].Pos(), "if condition must be a boolean, got %s", cond.Inspect())
	}
	if b.Value {
		return e.Eval(args[1], env)
	}
	return e.Eval(args[2], env)
}
