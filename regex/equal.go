package regex

import "slices"

// Equal reports whether a and b denote the same front-end AST shape, up to
// char-set member order (char sets compare as sets, not sequences).
func Equal(a, b *Regex) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Op != b.Op {
		return false
	}
	switch a.Op {
	case OpCharSet:
		return charSetEqual(a.Set, b.Set)
	case OpSingleChar:
		return a.Char == b.Char
	case OpString:
		return slices.Equal(a.Str, b.Str)
	case OpOption, OpStar, OpPlus:
		return Equal(a.Sub, b.Sub)
	case OpUnion, OpConcat:
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}
	return false
}

func charSetEqual(a, b CharSet) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := slices.Clone([]byte(a)), slices.Clone([]byte(b))
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}
