package front

import (
	"strconv"
)

type (
	// Token is one lexical unit.
	// All implementations are comparable values, so tokens are compared with ==.
	Token interface {
		token()
	}

	Keyword string
	Ident   string
	Number  int32
	Char    byte
	EOF     struct{}
)

const (
	KwInt    Keyword = "int"
	KwReturn Keyword = "return"
)

var keywords = map[string]Keyword{
	string(KwInt):    KwInt,
	string(KwReturn): KwReturn,
}

func (Keyword) token() {}
func (Ident) token()   {}
func (Number) token()  {}
func (Char) token()    {}
func (EOF) token()     {}

func (k Keyword) String() string { return string(k) }
func (x Ident) String() string   { return string(x) }
func (n Number) String() string  { return strconv.FormatInt(int64(n), 10) }
func (c Char) String() string    { return string(c) }
func (EOF) String() string       { return "EOF" }

// describe renders a token for diagnostics.
// Zero Ident and Number stand for the whole token class.
func describe(tk Token) string {
	switch tk := tk.(type) {
	case nil:
		return "nothing"
	case Keyword:
		return strconv.Quote(string(tk))
	case Ident:
		if tk == "" {
			return "identifier"
		}

		return "identifier " + strconv.Quote(string(tk))
	case Number:
		return "number " + tk.String()
	case Char:
		return strconv.QuoteRune(rune(tk))
	case EOF:
		return "end of input"
	default:
		panic(tk)
	}
}

func describeWant(tk Token) string {
	if n, ok := tk.(Number); ok && n == 0 {
		return "number"
	}

	return describe(tk)
}
