package jack

// SymbolTable is a two-scope name table: a class
// scope for static/field entries that lives for the whole class
// compilation, and a subroutine scope for argument/local entries that is
// reset at the start of every subroutine.
type SymbolTable struct {
	class      map[string]Symbol
	subroutine map[string]Symbol
	classCount map[SymbolKind]MachineWord
	subCount   map[SymbolKind]MachineWord
}

// NewSymbolTable constructs an empty table. Per §5's resource model, a
// fresh table is built per source file; nothing is shared across files.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		class:      make(map[string]Symbol),
		subroutine: make(map[string]Symbol),
		classCount: make(map[SymbolKind]MachineWord),
		subCount:   make(map[SymbolKind]MachineWord),
	}
}

// StartSubroutine clears the subroutine scope and its counters. Class-scope
// entries (statics, fields) and their counters persist across subroutines,
// class-scope entries are never touched here.
func (s *SymbolTable) StartSubroutine() {
	s.subroutine = make(map[string]Symbol)
	s.subCount = make(map[SymbolKind]MachineWord)
}

func (s *SymbolTable) scopeFor(kind SymbolKind) (map[string]Symbol, map[SymbolKind]MachineWord) {
	switch kind {
	case StaticSymbol, FieldSymbol:
		return s.class, s.classCount
	case ArgumentSymbol, LocalSymbol:
		return s.subroutine, s.subCount
	default:
		panic("unknown symbol kind: " + string(kind))
	}
}

// Declared reports whether name is already defined in the scope kind
// belongs to, used by the engine to reject redeclaration.
func (s *SymbolTable) Declared(name string, kind SymbolKind) bool {
	table, _ := s.scopeFor(kind)
	_, ok := table[name]
	return ok
}

// Define inserts a new symbol, assigning it the next free index for its
// kind within its scope, and bumps that kind's counter.
func (s *SymbolTable) Define(name, typ string, kind SymbolKind) Symbol {
	table, counts := s.scopeFor(kind)
	symbol := Symbol{Kind: kind, Type: typ, Index: counts[kind]}
	table[name] = symbol
	counts[kind]++
	return symbol
}

// Lookup resolves name, checking subroutine scope first so an inner
// declaration shadows an outer one.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	if symbol, ok := s.subroutine[name]; ok {
		return symbol, true
	}
	if symbol, ok := s.class[name]; ok {
		return symbol, true
	}
	return Symbol{}, false
}

// Count returns the number of symbols of kind defined so far in the scope
// that kind belongs to.
func (s *SymbolTable) Count(kind SymbolKind) MachineWord {
	_, counts := s.scopeFor(kind)
	return counts[kind]
}
