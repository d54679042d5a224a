package foldeq

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// sexpr prints e with explicit grouping. Unary nodes are written "u-" and
// "u+" to tell them apart from binary ones.
func sexpr(e Expr) string {
	switch e := e.(type) {
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.Operation, sexpr(e.Op1), sexpr(e.Op2))
	case *UnaryExpr:
		return fmt.Sprintf("(u%s %s)", e.Operation, sexpr(e.Operand))
	}

	return e.String()
}

// TestDataDriven runs the files under testdata. Directives:
//
//	parse     print the statement as parsed
//	optimize  print the folded statement
//	tree      print the parsed tree as s-expressions
//	tree-opt  print the folded tree as s-expressions
//	vars      print the statement's variables in sorted order
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			stmt, err := ParseStatement(strings.TrimSpace(d.Input))
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}

			switch d.Cmd {
			case "parse":
				return stmt.String() + "\n"
			case "optimize":
				return stmt.Optimize().String() + "\n"
			case "tree":
				return sexpr(stmt.Left) + " = " + sexpr(stmt.Right) + "\n"
			case "tree-opt":
				opt := stmt.Optimize()
				return sexpr(opt.Left) + " = " + sexpr(opt.Right) + "\n"
			case "vars":
				vars := SymbolsOf(stmt).Sorted()
				if len(vars) == 0 {
					return "(none)\n"
				}

				names := make([]string, len(vars))
				for i, v := range vars {
					names[i] = v.String()
				}
				return strings.Join(names, " ") + "\n"
			default:
				d.Fatalf(t, "unknown command %q", d.Cmd)
				return ""
			}
		})
	})
}
