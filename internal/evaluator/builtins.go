package evaluator

import (
	"github.com/funvibe/lispy/internal/config"
)

// Primitive is a built-in operation applied to evaluated arguments.
type Primitive int

const (
	PrimAdd Primitive = iota
	PrimSub
	PrimMul
	PrimDiv
	PrimRem
	PrimAnd
	PrimOr
	PrimXor
	PrimNot
	PrimShl
	PrimShr
	PrimGt
	PrimGe
	PrimLt
	PrimLe
	PrimEq
	PrimNe
	PrimAtom
	PrimCar
	PrimCdr
	PrimCons
)

type primitiveInfo struct {
	name  string
	arity int
}

var primitiveTable = [...]primitiveInfo{
	PrimAdd:  {config.AddName, 2},
	PrimSub:  {config.SubName, 2},
	PrimMul:  {config.MulName, 2},
	PrimDiv:  {config.DivName, 2},
	PrimRem:  {config.RemName, 2},
	PrimAnd:  {config.AndName, 2},
	PrimOr:   {config.OrName, 2},
	PrimXor:  {config.XorName, 2},
	PrimNot:  {config.NotName, 1},
	PrimShl:  {config.ShlName, 2},
	PrimShr:  {config.ShrName, 2},
	PrimGt:   {config.GtName, 2},
	PrimGe:   {config.GeName, 2},
	PrimLt:   {config.LtName, 2},
	PrimLe:   {config.LeName, 2},
	PrimEq:   {config.EqName, 2},
	PrimNe:   {config.NeName, 2},
	PrimAtom: {config.AtomName, 1},
	PrimCar:  {config.CarName, 1},
	PrimCdr:  {config.CdrName, 1},
	PrimCons: {config.ConsName, 2},
}

var primitivesByName = func() map[string]Primitive {
	m := make(map[string]Primitive, len(primitiveTable))
	for p, info := range primitiveTable {
		m[info.name] = Primitive(p)
	}
	return m
}()

// LookupPrimitive resolves a head symbol name to a primitive.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitivesByName[name]
	return p, ok
}

func (p Primitive) String() string { return primitiveTable[p].name }

// Arity is the exact number of arguments p accepts.
func (p Primitive) Arity() int { return primitiveTable[p].arity }

// PrimitiveNames lists every primitive name in declaration order.
func PrimitiveNames() []string {
	names := make([]string, len(primitiveTable))
	for i, info := range primitiveTable {
		names[i] = info.name
	}
	return names
}

func applyPrimitive(p Primitive, form *Pair, args []Value) (Value, error) {
	if len(args) != p.Arity() {
		return nil, invalidArguments(form.Span, "%s expects %d arguments, got %d", p, p.Arity(), len(args))
	}
	span := form.Span

	switch p {
	case PrimAdd, PrimSub, PrimMul, PrimDiv, PrimRem, PrimShl, PrimShr:
		l, r, err := numberOperands(p, args)
		if err != nil {
			return nil, err
		}
		n, err := arithmetic(p, l, r, span)
		if err != nil {
			return nil, err
		}
		return NewNumber(n, span), nil

	case PrimGt, PrimGe, PrimLt, PrimLe:
		l, r, err := numberOperands(p, args)
		if err != nil {
			return nil, err
		}
		return NewBoolean(compare(p, l, r), span), nil

	case PrimAnd, PrimOr, PrimXor:
		return bitwise(p, args, span)

	case PrimNot:
		switch v := args[0].(type) {
		case *Number:
			return NewNumber(^v.Value, span), nil
		case *Boolean:
			return NewBoolean(!v.Value, span), nil
		}
		return nil, invalidArguments(args[0].Pos(), "not expects a number or a boolean, got %s", args[0].Inspect())

	case PrimEq, PrimNe:
		eq, err := primitiveEqual(args[0], args[1])
		if err != nil {
			return nil, err
		}
		if p == PrimNe {
			eq = !eq
		}
		return NewBoolean(eq, span), nil

	case PrimAtom:
		switch args[0].(type) {
		case *Pair, *Closure:
			return NewBoolean(false, span), nil
		}
		return NewBoolean(true, span), nil

	case PrimCar, PrimCdr:
		pair, ok := args[0].(*Pair)
		if !ok {
			return nil, invalidArguments(args[0].Pos(), "%s expects a pair, got %s", p, args[0].Inspect())
		}
		if p == PrimCar {
			return pair.Car, nil
		}
		return pair.Cdr, nil

	case PrimCons:
		return NewPair(args[0], args[1], span), nil
	}
	panic("evaluator: unhandled primitive " + p.String())
}

func numberOperands(p Primitive, args []Value) (int32, int32, error) {
	l, ok := args[0].(*Number)
	if !ok {
		return 0, 0, invalidArguments(args[0].Pos(), "%s expects numbers, got %s", p, args[0].Inspect())
	}
	r, ok := args[1].(*Number)
	if !ok {
		return 0, 0, invalidArguments(args[1].Pos(), "%s expects numbers, got %s", p, args[1].Inspect())
	}
	return l.Value, r.Value, nil
}
