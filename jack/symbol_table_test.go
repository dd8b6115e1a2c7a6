package jack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTableDefineAndLookup(t *testing.T) {
	st := NewSymbolTable()

	st.Define("count", "int", StaticSymbol)
	st.Define("size", "int", FieldSymbol)
	st.Define("other", "int", FieldSymbol)

	sym, ok := st.Lookup("count")
	require.True(t, ok)
	assert.Equal(t, StaticSymbol, sym.Kind)
	assert.Equal(t, MachineWord(0), sym.Index)

	sym, ok = st.Lookup("size")
	require.True(t, ok)
	assert.Equal(t, FieldSymbol, sym.Kind)
	assert.Equal(t, MachineWord(0), sym.Index)

	sym, ok = st.Lookup("other")
	require.True(t, ok)
	assert.Equal(t, MachineWord(1), sym.Index, "second field gets the next field index")

	assert.Equal(t, MachineWord(1), st.Count(StaticSymbol))
	assert.Equal(t, MachineWord(2), st.Count(FieldSymbol))
}

func TestSymbolTableSubroutineShadowsClass(t *testing.T) {
	st := NewSymbolTable()
	st.Define("x", "int", FieldSymbol)

	st.StartSubroutine()
	st.Define("x", "int", LocalSymbol)

	sym, ok := st.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, LocalSymbol, sym.Kind, "subroutine scope must shadow class scope")
}

func TestSymbolTableStartSubroutinePreservesClassScope(t *testing.T) {
	st := NewSymbolTable()
	st.Define("field1", "int", FieldSymbol)
	st.Define("static1", "int", StaticSymbol)

	st.StartSubroutine()
	st.Define("a", "int", ArgumentSymbol)

	st.StartSubroutine()

	_, ok := st.Lookup("a")
	assert.False(t, ok, "locals/args from a prior subroutine must not leak into the next")

	_, ok = st.Lookup("field1")
	assert.True(t, ok, "class scope must survive StartSubroutine")
	_, ok = st.Lookup("static1")
	assert.True(t, ok, "class scope must survive StartSubroutine")

	assert.Equal(t, MachineWord(0), st.Count(ArgumentSymbol), "subroutine counters reset")
	assert.Equal(t, MachineWord(1), st.Count(FieldSymbol), "class counters persist")
}

func TestSymbolTableDeclaredDetectsRedeclaration(t *testing.T) {
	st := NewSymbolTable()
	st.Define("n", "int", LocalSymbol)
	assert.True(t, st.Declared("n", LocalSymbol))
	assert.False(t, st.Declared("m", LocalSymbol))
}

func TestSymbolSegment(t *testing.T) {
	assert.Equal(t, ThisSegment, Symbol{Kind: FieldSymbol}.segment())
	assert.Equal(t, StaticSegment, Symbol{Kind: StaticSymbol}.segment())
	assert.Equal(t, ArgumentSegment, Symbol{Kind: ArgumentSymbol}.segment())
	assert.Equal(t, LocalSegment, Symbol{Kind: LocalSymbol}.segment())
}
