package front

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type (
	// Tokenizer splits source text into tokens one at a time.
	// There is no way to push a token back.
	Tokenizer struct {
		b []byte

		st int // start of the last token
		i  int
	}
)

func NewTokenizer(text []byte) *Tokenizer {
	return &Tokenizer{b: text}
}

// Next returns the next token.
// EOF is returned on every call once the input is exhausted.
func (t *Tokenizer) Next() (Token, error) {
	t.i = skipSpaces(t.b, t.i)
	t.st = t.i

	if t.i == len(t.b) {
		return EOF{}, nil
	}

	c := t.b[t.i]

	switch c {
	case '(', ')', '{', '}', ';':
		t.i++

		return Char(c), nil
	}

	if c >= '0' && c <= '9' {
		t.i = skipNum(t.b, t.i)
		text := string(t.b[t.st:t.i])

		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, OverflowError{Text: text, Pos: t.st}
		}

		return Number(v), nil
	}

	r, w := utf8.DecodeRune(t.b[t.i:])
	t.i += w

	if r != '_' && !unicode.IsLetter(r) {
		return nil, UnrecognizedCharError{Char: r, Pos: t.st}
	}

	t.i = skipIdent(t.b, t.i)
	id := string(t.b[t.st:t.i])

	if kw, ok := keywords[id]; ok {
		return kw, nil
	}

	return Ident(id), nil
}

// Pos is the offset of the last returned token.
func (t *Tokenizer) Pos() int { return t.st }

// End is the offset right after the last returned token.
func (t *Tokenizer) End() int { return t.i }

// LineCol converts offset into 1-based line and column.
// Column is counted in runes.
func (t *Tokenizer) LineCol(pos int) (line, col int) {
	if pos > len(t.b) {
		pos = len(t.b)
	}

	line = 1
	st := 0

	for i := 0; i < pos; i++ {
		if t.b[i] == '\n' {
			line++
			st = i + 1
		}
	}

	return line, utf8.RuneCount(t.b[st:pos]) + 1
}

func skipSpaces(b []byte, i int) int {
	for i < len(b) {
		r, w := utf8.DecodeRune(b[i:])
		if !unicode.IsSpace(r) {
			break
		}

		i += w
	}

	return i
}

func skipIdent(b []byte, i int) int {
	for i < len(b) {
		r, w := utf8.DecodeRune(b[i:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			break
		}

		i += w
	}

	return i
}

func skipNum(b []byte, i int) int {
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}

	return i
}
