package modetype

import "github.com/keithc-ca/taco/ir"

// valsArrayVar names the variable slot a Values mode binds: the flat
// value array backing the tensor's nonzero entries.
const valsArrayVar = "vals"

// Values is the terminal mode ending every format tree. It carries no
// coordinate structure of its own — it exposes only the value array, read
// by position and appended to during materialization (spec.md §4.2). The
// value array is its only array and answers GetArray for slot 0 alone.
var Values = &ModeType{
	Name: "values",

	Full:       true,
	Ordered:    true,
	Unique:     true,
	Branchless: true,
	Compact:    true,

	Hooks: Hooks{
		GetArray: func(i int, m *Mode) ir.Expr {
			if i != 0 || !m.HasVar(valsArrayVar) {
				return nil
			}
			return m.GetVar(valsArrayVar)
		},
	},
}
