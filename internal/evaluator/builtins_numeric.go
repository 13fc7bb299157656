package evaluator

import "github.com/funvibe/lispy/internal/token"

// Arithmetic wraps on overflow (two's complement int32). Division
// truncates toward zero; MinInt32 / -1 wraps to MinInt32 with remainder 0.
// Shift counts use their low five bits and shr is arithmetic.
func arithmetic(p Primitive, l, r int32, span token.Span) (int32, error) {
	switch p {
	case PrimAdd:
		return l + r, nil
	case PrimSub:
		return l - r, nil
	case PrimMul:
		return l * r, nil
	case PrimDiv:
		if r == 0 {
			return 0, newError(DivisionByZero, span)
		}
		return l / r, nil
	case PrimRem:
		if r == 0 {
			return 0, newError(DivisionByZero, span)
		}
		return l % r, nil
	case PrimShl:
		return l << (uint32(r) & 31), nil
	case PrimShr:
		return l >> (uint32(r) & 31), nil
	}
	panic("evaluator: not an arithmetic primitive: " + p.String())
}

func compare(p Primitive, l, r int32) bool {
	switch p {
	case PrimGt:
		return l > r
	case PrimGe:
		return l >= r
	case PrimLt:
		return l < r
	case PrimLe:
		return l <= r
	}
	panic("evaluator: not a comparison primitive: " + p.String())
}

// bitwise applies and/or/xor bitwise to two numbers or logically to two
// booleans.
func bitwise(p Primitive, args []Value, span token.Span) (Value, error) {
	switch l := args[0].(type) {
	case *Number:
		if r, ok := args[1].(*Number); ok {
			switch p {
			case PrimAnd:
				return NewNumber(l.Value&r.Value, span), nil
			case PrimOr:
				return NewNumber(l.Value|r.Value, span), nil
			}
			return NewNumber(l.Value^r.Value, span), nil
		}
	case *Boolean:
		if r, ok := args[1].(*Boolean); ok {
			switch p {
			case PrimAnd:
				return NewBoolean(l.Value && r.Value, span), nil
			case PrimOr:
				return NewBoolean(l.Value || r.Value, span), nil
			}
			return NewBoolean(l.Value != r.Value, span), nil
		}
	}
	return nil, invalidArguments(span, "%s expects two numbers or two booleans, got %s and %s", p, args[0].Inspect(), args[1].Inspect())
}

// primitiveEqual implements eq: numbers, booleans and symbols compare
// with their own kind, nil equals only nil and is unequal to anything
// else. Other combinations are invalid.
func primitiveEqual(a, b Value) (bool, error) {
	_, aNil := a.(*Nil)
	_, bNil := b.(*Nil)
	if aNil || bNil {
		return aNil && bNil, nil
	}
	switch l := a.(type) {
	case *Number:
		if r, ok := b.(*Number); ok {
			return l.Value == r.Value, nil
		}
	case *Boolean:
		if r, ok := b.(*Boolean); ok {
			return l.Value == r.Value, nil
		}
	case *Symbol:
		if r, ok := b.(*Symbol); ok {
			return l.Name == r.Name, nil
		}
	}
	return false, invalidArguments(b.Pos(), "cannot compare %s with %s", a.Inspect(), b.Inspect())
}
