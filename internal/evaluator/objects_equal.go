package evaluator

// Equal performs a deep structural comparison, ignoring spans.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}

	switch aVal := a.(type) {
	case *Number:
		return aVal.Value == b.(*Number).Value
	case *Boolean:
		return aVal.Value == b.(*Boolean).Value
	case *Nil:
		return true
	case *Symbol:
		return aVal.Name == b.(*Symbol).Name
	case *Pair:
		bVal := b.(*Pair)
		return Equal(aVal.Car, bVal.Car) && Equal(aVal.Cdr, bVal.Cdr)
	case *Closure:
		bVal := b.(*Closure)
		if len(aVal.Params) != len(bVal.Params) || aVal.Scope != bVal.Scope {
			return false
		}
		for i := range aVal.Params {
			if aVal.Params[i] != bVal.Params[i] {
				return false
			}
		}
		return Equal(aVal.Body, bVal.Body)
	}
	return false
}
