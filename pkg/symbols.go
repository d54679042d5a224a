package foldeq

import "sort"

// SymbolTable is the set of variables referenced by an expression or a
// statement, kept in order of first appearance.
type SymbolTable struct {
	Entries []Variable
	seen    map[Variable]bool
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		seen: make(map[Variable]bool),
	}
}

// SymbolsOf collects the variables of a statement, left side first.
func SymbolsOf(s *Statement) *SymbolTable {
	left, right := NewSymbolTable(), NewSymbolTable()
	left.Collect(s.Left)
	right.Collect(s.Right)

	left.Merge(right)
	return left
}

func (t *SymbolTable) Add(v Variable) {
	if t.Contains(v) {
		return
	}

	t.seen[v] = true
	t.Entries = append(t.Entries, v)
}

func (t *SymbolTable) Contains(v Variable) bool {
	return t.seen[v]
}

// Collect adds every variable of e, walking left to right.
func (t *SymbolTable) Collect(e Expr) {
	switch e := e.(type) {
	case Variable:
		t.Add(e)
	case *UnaryExpr:
		t.Collect(e.Operand)
	case *BinaryExpr:
		t.Collect(e.Op1)
		t.Collect(e.Op2)
	}
}

func (t *SymbolTable) Merge(t2 *SymbolTable) {
	for _, v := range t2.Entries {
		t.Add(v)
	}
}

// Sorted returns the variables in rune order.
func (t *SymbolTable) Sorted() []Variable {
	vars := make([]Variable, len(t.Entries))
	copy(vars, t.Entries)
	sort.Slice(vars, func(i, j int) bool {
		return vars[i] < vars[j]
	})

	return vars
}

func (t *SymbolTable) Len() int {
	return len(t.Entries)
}
