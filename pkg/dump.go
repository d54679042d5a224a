package foldeq

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes the structure of v, typically a *Statement or an Expr.
func Dump(w io.Writer, v interface{}) {
	dumper.Fdump(w, v)
}

// Sdump is Dump into a string.
func Sdump(v interface{}) string {
	return dumper.Sdump(v)
}
