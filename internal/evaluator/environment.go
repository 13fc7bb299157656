package evaluator

// ScopeID is a handle to a scope in an Environment's arena.
type ScopeID int

// NoScope marks a closure without a captured scope.
const NoScope ScopeID = -1

// GlobalScope is the session's top-level scope.
const GlobalScope ScopeID = 0

type scope struct {
	store    map[string]Value
	parent   ScopeID
	captured bool // referenced by a closure; never reclaimed
	released bool // disclosed, awaiting reclamation
}

// Environment is a chain of scopes kept in an arena. Lookups walk parent
// handles from the current scope outwards; definitions always target the
// current scope.
//
// Enclose/Disclose calls must be balanced. Disclose restores whatever
// scope was current at the matching Enclose, which for lexical closures
// is not necessarily the parent of the disclosed scope.
type Environment struct {
	scopes  []scope
	current ScopeID
	saved   []ScopeID
}

func NewEnvironment() *Environment {
	return &Environment{
		scopes:  []scope{{store: make(map[string]Value), parent: NoScope}},
		current: GlobalScope,
	}
}

// Lookup searches innermost to outermost and returns the first match.
func (e *Environment) Lookup(name string) (Value, bool) {
	for id := e.current; id != NoScope; id = e.scopes[id].parent {
		if val, ok := e.scopes[id].store[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// Define binds name in the current scope, replacing any previous binding
// there.
func (e *Environment) Define(name string, val Value) {
	e.scopes[e.current].store[name] = val
}

// Enclose pushes a new empty scope whose parent is the current scope.
func (e *Environment) Enclose() {
	e.EncloseAt(e.current)
}

// EncloseAt pushes a new empty scope under parent.
func (e *Environment) EncloseAt(parent ScopeID) {
	if !e.valid(parent) {
		panic("evaluator: enclose under unknown scope")
	}
	e.saved = append(e.saved, e.current)
	e.scopes = append(e.scopes, scope{store: make(map[string]Value), parent: parent})
	e.current = ScopeID(len(e.scopes) - 1)
}

// Disclose pops the current scope and restores the scope that was current
// at the matching Enclose. Calling it without a matching Enclose is a bug
// in the caller and panics.
func (e *Environment) Disclose() {
	n := len(e.saved)
	if n == 0 {
		panic("evaluator: disclose without matching enclose")
	}
	top := e.current
	e.current = e.saved[n-1]
	e.saved = e.saved[:n-1]

	if !e.scopes[top].captured {
		e.scopes[top].released = true
	}
	e.reclaim()
}

// Capture pins the current scope chain so closures can re-enter it after
// the enclosing call has returned, and returns its handle.
func (e *Environment) Capture() ScopeID {
	for id := e.current; id != NoScope && !e.scopes[id].captured; id = e.scopes[id].parent {
		e.scopes[id].captured = true
	}
	return e.current
}

// Current returns the handle of the innermost scope.
func (e *Environment) Current() ScopeID { return e.current }

// Depth returns the number of open enclosures.
func (e *Environment) Depth() int { return len(e.saved) }

// Size returns the number of scopes held by the arena.
func (e *Environment) Size() int { return len(e.scopes) }

// Names returns the names bound in the global scope.
func (e *Environment) Names() []string {
	store := e.scopes[GlobalScope].store
	names := make([]string, 0, len(store))
	for name := range store {
		names = append(names, name)
	}
	return names
}

func (e *Environment) valid(id ScopeID) bool {
	return id >= 0 && int(id) < len(e.scopes) && !e.scopes[id].released
}

// reclaim drops released scopes from the end of the arena. A released
// scope was never captured, so nothing can refer to it any more.
func (e *Environment) reclaim() {
	for n := len(e.scopes); n > 1 && e.scopes[n-1].released; n-- {
		e.scopes[n-1] = scope{}
		e.scopes = e.scopes[:n-1]
	}
}
