package regex

import (
	"github.com/pkg/errors"
)

// escapeMap maps the conventional escapes (spec.md §4.1) to their byte
// value; any other escaped byte is returned verbatim by readEscape.
var escapeMap = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'0':  0,
}

// Parse reads a surface-syntax regular expression and produces a front-end
// AST, per the grammar in spec.md §4.1:
//
//	union   := concat ('|' concat)*
//	concat  := repeat+
//	repeat  := atom ('*' | '+' | '?')*
//	atom    := '(' union ')' | '[' class ']' | '"' str '"' | '\' esc | byte
//
// On failure it returns a *ParseError carrying the byte offset where
// parsing failed, wrapped with a stack trace, and discards whatever
// partial tree it had built.
func Parse(src string) (*Regex, error) {
	p := &parser{src: []byte(src)}
	r, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	p.skipWs()
	if p.pos < len(p.src) {
		return nil, p.fail(ErrTrailingInput)
	}
	return r, nil
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) fail(cause error) error {
	return errors.WithStack(&ParseError{Offset: p.pos, Cause: cause})
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (p *parser) skipWs() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) consumeIf(c byte) bool {
	if !p.eof() && p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseUnion() (*Regex, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		p.skipWs()
		if !p.consumeIf('|') {
			break
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = UnionNode(left, right)
	}
	return left, nil
}

// atConcatBoundary reports whether the concat loop should stop: at '|', at
// ')', or at end of input. Unmatched ')' is still caught, because an atom
// never consumes ')' itself (see parseAtom's operator-in-atom-position case
// for a *leading* ')').
func (p *parser) atConcatBoundary() bool {
	if p.eof() {
		return true
	}
	c := p.peek()
	return c == '|' || c == ')'
}

func (p *parser) parseConcat() (*Regex, error) {
	first, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	result := first
	for {
		p.skipWs()
		if p.atConcatBoundary() {
			break
		}
		next, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		result = ConcatNode(result, next)
	}
	return result, nil
}

func (p *parser) parseRepeat() (*Regex, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		p.skipWs()
		if p.eof() {
			break
		}
		switch p.peek() {
		case '*':
			p.pos++
			atom = StarNode(atom)
		case '+':
			p.pos++
			atom = PlusNode(atom)
		case '?':
			p.pos++
			atom = OptionNode(atom)
		default:
			return atom, nil
		}
	}
	return atom, nil
}

func (p *parser) parseAtom() (*Regex, error) {
	p.skipWs()
	if p.eof() {
		return nil, p.fail(ErrUnexpectedEOF)
	}
	switch c := p.peek(); c {
	case '(':
		p.pos++
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		p.skipWs()
		if !p.consumeIf(')') {
			return nil, p.fail(ErrUnmatchedLParen)
		}
		return inner, nil
	case '[':
		p.pos++
		set, err := p.parseClass()
		if err != nil {
			return nil, err
		}
		if !p.consumeIf(']') {
			return nil, p.fail(ErrUnmatchedLBrack)
		}
		return CharSetNode(set), nil
	case '"':
		p.pos++
		str, err := p.parseString()
		if err != nil {
			return nil, err
		}
		if !p.consumeIf('"') {
			return nil, p.fail(ErrUnmatchedQuote)
		}
		return StringNode(str), nil
	case '\\':
		p.pos++
		b, err := p.readEscape()
		if err != nil {
			return nil, err
		}
		return SingleCharNode(b), nil
	case '|', ')':
		return nil, p.fail(ErrUnexpectedToken)
	case '*', '+', '?':
		return nil, p.fail(ErrUnexpectedToken)
	default:
		p.pos++
		return SingleCharNode(c), nil
	}
}

func (p *parser) readEscape() (byte, error) {
	if p.eof() {
		return 0, p.fail(ErrDanglingBackslash)
	}
	c := p.peek()
	p.pos++
	if b, ok := escapeMap[c]; ok {
		return b, nil
	}
	return c, nil
}

// readClassByte reads one class member byte: an escape, or a literal byte.
// Caller has already established the class is not yet closed.
func (p *parser) readClassByte() (byte, error) {
	if p.eof() {
		return 0, p.fail(ErrUnmatchedLBrack)
	}
	c := p.peek()
	if c == '\\' {
		p.pos++
		return p.readEscape()
	}
	p.pos++
	return c, nil
}

// parseClass reads class items up to (not including) the closing ']'. A
// '-' immediately before ']' is a literal '-' rather than a range operator,
// per spec.md §4.1. Ranges whose start exceeds their end have their
// endpoints swapped rather than being rejected.
func (p *parser) parseClass() (CharSet, error) {
	var set CharSet
	for {
		if p.eof() {
			return nil, p.fail(ErrUnmatchedLBrack)
		}
		if p.peek() == ']' {
			break
		}
		start, err := p.readClassByte()
		if err != nil {
			return nil, err
		}
		if !p.eof() && p.peek() == '-' && p.pos+1 < len(p.src) && p.src[p.pos+1] != ']' {
			p.pos++ // consume '-'
			end, err := p.readClassByte()
			if err != nil {
				return nil, err
			}
			lo, hi := start, end
			if lo > hi {
				lo, hi = hi, lo
			}
			for b := int(lo); b <= int(hi); b++ {
				set = append(set, byte(b))
			}
		} else {
			set = append(set, start)
		}
	}
	return set, nil
}

// parseString reads literal bytes up to (not including) the closing '"',
// resolving escapes as it goes.
func (p *parser) parseString() ([]byte, error) {
	var buf []byte
	for {
		if p.eof() {
			return nil, p.fail(ErrUnmatchedQuote)
		}
		c := p.peek()
		if c == '"' {
			break
		}
		if c == '\\' {
			p.pos++
			b, err := p.readEscape()
			if err != nil {
				return nil, err
			}
			buf = append(buf, b)
			continue
		}
		p.pos++
		buf = append(buf, c)
	}
	return buf, nil
}
