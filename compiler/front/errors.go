package front

import (
	"fmt"
	"strings"
)

type (
	UnexpectedError struct {
		Got  Token
		Want []Token
		Pos  int
	}

	// UnterminatedError is returned when input ends inside a construct.
	UnterminatedError struct {
		What string
		Want Token
		Pos  int
	}

	UnrecognizedCharError struct {
		Char rune
		Pos  int
	}

	OverflowError struct {
		Text string
		Pos  int
	}
)

func NewUnexpected(got Token, pos int, want ...Token) error {
	return UnexpectedError{
		Got:  got,
		Want: want,
		Pos:  pos,
	}
}

func (e UnexpectedError) Error() string {
	l := make([]string, len(e.Want))

	for i := range e.Want {
		l[i] = describeWant(e.Want[i])
	}

	return fmt.Sprintf("unexpected %v, want %v", describe(e.Got), strings.Join(l, " or "))
}

func (e UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated %v: want %v", e.What, describeWant(e.Want))
}

func (e UnrecognizedCharError) Error() string {
	return fmt.Sprintf("unrecognized character %q at pos %d", e.Char, e.Pos)
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("integer literal %v overflows int32", e.Text)
}

func (e UnexpectedError) Position() int       { return e.Pos }
func (e UnterminatedError) Position() int     { return e.Pos }
func (e UnrecognizedCharError) Position() int { return e.Pos }
func (e OverflowError) Position() int         { return e.Pos }
