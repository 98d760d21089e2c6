package format

import "fmt"

// FormatError is a recoverable format-parse error: an unknown code in a
// format string. It carries the offending character and its byte position
// so the caller can reject the input tensor declaration with a useful
// message (spec.md §7, error kind 1).
type FormatError struct {
	Char rune
	Pos  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unknown format code %q at position %d", e.Char, e.Pos)
}

// codeConstructors maps a format code to the level constructor that wraps a
// sub-level in that kind. Values never appears in a format string: it is
// the implicit terminator every chain gets appended automatically.
var codeConstructors = map[byte]func(TreeLevel) TreeLevel{
	'd': NewDense,
	's': NewSparse,
	'f': NewFixed,
	'r': NewReplicated,
}

// Parse turns a format string such as "ds" into the format tree
// Dense(Sparse(Values)), resolving codes outermost to innermost with an
// implicit Values terminator. An unknown code fails with a *FormatError
// naming the offending character and its position.
func Parse(s string) (TreeLevel, error) {
	for i := 0; i < len(s); i++ {
		if _, ok := codeConstructors[s[i]]; !ok {
			return nil, &FormatError{Char: rune(s[i]), Pos: i}
		}
	}

	tl := NewValues()
	for i := len(s) - 1; i >= 0; i-- {
		tl = codeConstructors[s[i]](tl)
	}
	return tl, nil
}

// Render is the left inverse of Parse: it renders a format tree back to its
// code-string form, followed by the implicit values terminator marker used
// by diagnostics. Render(Parse(s)) == s + "v" for every valid s.
func Render(tl TreeLevel) string {
	buf := make([]byte, 0, Depth(tl))
	for tl != nil {
		buf = append(buf, tl.Code())
		tl = tl.Children()
	}
	return string(buf)
}
