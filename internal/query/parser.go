package query

import (
	"strings"

	"rusearch/internal/tokenize"
)

// Parse parses a boolean query string into an AST. Precedence, low to
// high, is ||, implicit-AND/&&, !, atom. An empty or all-whitespace
// query returns a nil Node. Terms are normalized (case-folded) as they
// are read; they are not stemmed, which the evaluator does before the
// index lookup.
func Parse(q string) *Node {
	p := &parser{query: q}
	p.skipWhitespace()
	if p.pos >= len(p.query) {
		return nil
	}
	return p.parseOr()
}

type parser struct {
	query string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.query) {
		return 0
	}
	return p.query[p.pos]
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.query) && isSpace(p.query[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// match consumes s (after skipping leading whitespace) if the query has
// it at the current position, reporting whether it matched.
func (p *parser) match(s string) bool {
	p.skipWhitespace()
	if strings.HasPrefix(p.query[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) parseOr() *Node {
	left := p.parseAnd()
	if left == nil {
		return nil
	}

	operands := []*Node{left}
	for p.match("||") {
		if right := p.parseAnd(); right != nil {
			operands = append(operands, right)
		}
	}

	if len(operands) == 1 {
		return operands[0]
	}
	return &Node{Type: Or, Operands: operands}
}

func (p *parser) parseAnd() *Node {
	left := p.parseNot()
	if left == nil {
		return nil
	}

	operands := []*Node{left}
	for {
		if p.match("&&") {
			if right := p.parseNot(); right != nil {
				operands = append(operands, right)
			}
			continue
		}

		p.skipWhitespace()
		if p.continuesImplicitAnd() {
			if right := p.parseNot(); right != nil {
				operands = append(operands, right)
				continue
			}
		}
		break
	}

	if len(operands) == 1 {
		return operands[0]
	}
	return &Node{Type: And, Operands: operands}
}

// continuesImplicitAnd reports whether the current position starts
// another conjunct: '!', '(', an ASCII alphanumeric, a high-bit byte
// (the lead byte of a multi-byte UTF-8 sequence) — but not the start of
// an "||" token, which parseOr owns.
func (p *parser) continuesImplicitAnd() bool {
	if strings.HasPrefix(p.query[p.pos:], "||") {
		return false
	}
	c := p.peek()
	return c == '!' || c == '(' || isASCIIAlnum(c) || c >= 0x80
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *parser) parseNot() *Node {
	p.skipWhitespace()
	if p.peek() == '!' {
		p.pos++
		operand := p.parseNot()
		if operand == nil {
			return nil
		}
		return &Node{Type: Not, Operand: operand}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() *Node {
	p.skipWhitespace()

	if p.peek() == '(' {
		p.pos++
		expr := p.parseOr()
		p.skipWhitespace()
		if p.peek() == ')' {
			p.pos++
		}
		return expr
	}

	term := p.readTerm()
	if term == "" {
		return nil
	}
	return &Node{Type: Term, TermValue: term}
}

// readTerm consumes a maximal run of letter-or-digit characters plus '-'
// and '_', folding case as it goes so the returned term matches what
// the tokenizer would have written to the index.
func (p *parser) readTerm() string {
	p.skipWhitespace()

	var b strings.Builder
	for p.pos < len(p.query) {
		c := p.query[p.pos]

		if c == '-' || c == '_' {
			b.WriteByte(c)
			p.pos++
			continue
		}

		width, ok := tokenize.IsLetterOrDigit(p.query, p.pos, true)
		if !ok {
			break
		}
		b.WriteString(p.query[p.pos : p.pos+width])
		p.pos += width
	}

	return tokenize.Normalize(b.String())
}
