package ast

import "github.com/k0kubun/pp/v3"

// Dump pretty-prints a SelectStatement for interactive debugging. It is
// not part of the parse contract and allocates freely.
func Dump(stmt *SelectStatement) string {
	return pp.Sprint(stmt)
}
