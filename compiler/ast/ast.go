package ast

type (
	// Program is a whole translation unit.
	// The only kind of Program is a single *Function.
	Program interface {
		program()
	}

	Stmt interface {
		stmt()
	}

	Expr interface {
		expr()
	}

	// Base is a byte range [Pos, End) in the source text.
	Base struct {
		Pos int
		End int
	}

	Function struct {
		Base `tlog:",embed"`

		Name string
		Body []Stmt
	}

	Return struct {
		Base `tlog:",embed"`

		Value Expr
	}

	Number struct {
		Base `tlog:",embed"`

		Value int32
	}
)

func (*Function) program() {}

func (Return) stmt() {}

func (Number) expr() {}
