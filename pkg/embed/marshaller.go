package lispy

import (
	"fmt"
	"math"
	"reflect"

	"github.com/funvibe/lispy/internal/evaluator"
	"github.com/funvibe/lispy/internal/token"
)

// Cons is the Go form of an improper pair.
type Cons struct {
	Car interface{}
	Cdr interface{}
}

// Procedure is the Go form of a closure. It cannot be called from Go.
type Procedure struct {
	Params []string
	Text   string
}

// Marshaller handles conversion between Go and lispy values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value. Integers must fit in int32, strings become
// symbols and slices become proper lists.
func (m *Marshaller) ToValue(val interface{}) (evaluator.Value, error) {
	var span token.Span
	if val == nil {
		return evaluator.NewNil(span), nil
	}
	switch v := val.(type) {
	case evaluator.Value:
		return v, nil
	case Cons:
		car, err := m.ToValue(v.Car)
		if err != nil {
			return nil, err
		}
		cdr, err := m.ToValue(v.Cdr)
		if err != nil {
			return nil, err
		}
		return evaluator.NewPair(car, cdr, span), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return evaluator.NewBoolean(rv.Bool(), span), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("lispy: %d does not fit in a 32-bit number", n)
		}
		return evaluator.NewNumber(int32(n), span), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > math.MaxInt32 {
			return nil, fmt.Errorf("lispy: %d does not fit in a 32-bit number", n)
		}
		return evaluator.NewNumber(int32(n), span), nil
	case reflect.String:
		return evaluator.NewSymbol(rv.String(), span), nil
	case reflect.Slice, reflect.Array:
		vals := make([]evaluator.Value, rv.Len())
		for i := range vals {
			elem, err := m.ToValue(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("lispy: element %d: %w", i, err)
			}
			vals[i] = elem
		}
		return evaluator.NewList(vals, span), nil
	}
	return nil, fmt.Errorf("lispy: cannot convert %T", val)
}

// FromValue converts a value to Go: int32, bool, nil, string (symbols),
// []interface{} (proper lists), Cons (improper pairs) or Procedure.
func (m *Marshaller) FromValue(val evaluator.Value) (interface{}, error) {
	switch v := val.(type) {
	case *evaluator.Number:
		return v.Value, nil
	case *evaluator.Boolean:
		return v.Value, nil
	case *evaluator.Nil:
		return nil, nil
	case *evaluator.Symbol:
		return v.Name, nil
	case *evaluator.Closure:
		return Procedure{Params: append([]string(nil), v.Params...), Text: v.Inspect()}, nil
	case *evaluator.Pair:
		if items, ok := properList(v); ok {
			out := make([]interface{}, len(items))
			for i, item := range items {
				goVal, err := m.FromValue(item)
				if err != nil {
					return nil, err
				}
				out[i] = goVal
			}
			return out, nil
		}
		car, err := m.FromValue(v.Car)
		if err != nil {
			return nil, err
		}
		cdr, err := m.FromValue(v.Cdr)
		if err != nil {
			return nil, err
		}
		return Cons{Car: car, Cdr: cdr}, nil
	}
	return nil, fmt.Errorf("lispy: cannot convert %T", val)
}

func properList(p *evaluator.Pair) ([]evaluator.Value, bool) {
	var items []evaluator.Value
	var cur evaluator.Value = p
	for {
		switch node := cur.(type) {
		case *evaluator.Nil:
			return items, true
		case *evaluator.Pair:
			items = append(items, node.Car)
			cur = node.Cdr
		default:
			return nil, false
		}
	}
}
