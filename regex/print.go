package regex

import "strings"

// Print renders r back into the surface syntax, fully parenthesizing every
// non-atomic sub-expression so reparsing never depends on precedence. It is
// the canonical printer spec.md §8 requires for the parse/print round-trip
// property: Parse(Print(r)) reproduces r for any r returned by Parse.
func Print(r *Regex) string {
	var b strings.Builder
	writeRegex(&b, r)
	return b.String()
}

func writeRegex(b *strings.Builder, r *Regex) {
	switch r.Op {
	case OpCharSet:
		writeCharSet(b, r.Set)
	case OpSingleChar:
		writeAtomByte(b, r.Char)
	case OpString:
		b.WriteByte('"')
		for _, c := range r.Str {
			writeStringByte(b, c)
		}
		b.WriteByte('"')
	case OpOption:
		b.WriteByte('(')
		writeRegex(b, r.Sub)
		b.WriteString(")?")
	case OpStar:
		b.WriteByte('(')
		writeRegex(b, r.Sub)
		b.WriteString(")*")
	case OpPlus:
		b.WriteByte('(')
		writeRegex(b, r.Sub)
		b.WriteString(")+")
	case OpUnion:
		b.WriteByte('(')
		writeRegex(b, r.Left)
		b.WriteByte('|')
		writeRegex(b, r.Right)
		b.WriteByte(')')
	case OpConcat:
		b.WriteByte('(')
		writeRegex(b, r.Left)
		writeRegex(b, r.Right)
		b.WriteByte(')')
	default:
		panic("regex: unrecognized front-end op")
	}
}

func writeCharSet(b *strings.Builder, set CharSet) {
	b.WriteByte('[')
	for _, c := range set {
		writeClassByte(b, c)
	}
	b.WriteByte(']')
}

func mnemonicEscape(c byte) (string, bool) {
	switch c {
	case '\n':
		return `\n`, true
	case '\t':
		return `\t`, true
	case '\r':
		return `\r`, true
	case 0:
		return `\0`, true
	case '\\':
		return `\\`, true
	}
	return "", false
}

func isMetaByte(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '|', '*', '+', '?', '"':
		return true
	}
	return false
}

// writeAtomByte renders a single byte so it reparses to OpSingleChar: any
// byte that would otherwise be swallowed by whitespace-skipping or
// misread as an operator is escaped.
func writeAtomByte(b *strings.Builder, c byte) {
	if esc, ok := mnemonicEscape(c); ok {
		b.WriteString(esc)
		return
	}
	if isSpace(c) || isMetaByte(c) {
		b.WriteByte('\\')
		b.WriteByte(c)
		return
	}
	b.WriteByte(c)
}

func writeClassByte(b *strings.Builder, c byte) {
	switch c {
	case ']', '-', '\\':
		b.WriteByte('\\')
		b.WriteByte(c)
		return
	}
	if esc, ok := mnemonicEscape(c); ok {
		b.WriteString(esc)
		return
	}
	b.WriteByte(c)
}

func writeStringByte(b *strings.Builder, c byte) {
	switch c {
	case '"', '\\':
		b.WriteByte('\\')
		b.WriteByte(c)
		return
	}
	if esc, ok := mnemonicEscape(c); ok {
		b.WriteString(esc)
		return
	}
	b.WriteByte(c)
}
