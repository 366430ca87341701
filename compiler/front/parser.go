package front

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/tinyc/compiler/ast"
)

type (
	// Parser is a recursive descent parser with one token of lookahead.
	//
	//	Program    := Function EOF
	//	Function   := "int" Identifier "(" ")" "{" Statement* "}"
	//	Statement  := "return" Expression ";"
	//	Expression := Number
	Parser struct {
		t *Tokenizer

		tk  Token // current token
		pos int   // current token offset
		end int   // end of the last consumed token
		err error // tokenizer error on the current token

		in string // construct being parsed, for diagnostics
	}
)

func Parse(ctx context.Context, text []byte) (ast.Program, error) {
	p := NewParser(NewTokenizer(text))

	return p.ParseProgram(ctx)
}

// NewParser reads the first token right away.
// Tokenizer error, if any, is reported by ParseProgram.
func NewParser(t *Tokenizer) *Parser {
	p := &Parser{t: t}

	p.tk, p.err = t.Next()
	p.pos = t.Pos()

	return p
}

func (p *Parser) ParseProgram(ctx context.Context) (x ast.Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse program")
	defer tr.Finish("err", &err)

	if p.err != nil {
		return nil, p.err
	}

	f, err := p.parseFunction(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "function")
	}

	if _, ok := p.tk.(EOF); !ok {
		return nil, NewUnexpected(p.tk, p.pos, EOF{})
	}

	tr.Printw("program", "func", f.Name, "stmts", len(f.Body))

	return f, nil
}

func (p *Parser) parseFunction(ctx context.Context) (f *ast.Function, err error) {
	pos := p.pos

	err = p.expect(ctx, KwInt)
	if err != nil {
		return nil, err
	}

	p.in = "function header"

	name, ok := p.tk.(Ident)
	if !ok {
		return nil, p.unexpected(Ident(""))
	}

	err = p.advance(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range []Char{'(', ')', '{'} {
		err = p.expect(ctx, c)
		if err != nil {
			return nil, err
		}
	}

	p.in = "function body"

	var body []ast.Stmt

	for p.tk != Char('}') {
		if _, ok := p.tk.(EOF); ok {
			return nil, UnterminatedError{What: p.in, Want: Char('}'), Pos: p.pos}
		}

		s, err := p.parseStatement(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "statement %d", len(body))
		}

		body = append(body, s)
	}

	err = p.expect(ctx, Char('}'))
	if err != nil {
		return nil, err
	}

	p.in = ""

	tlog.SpanFromContext(ctx).Printw("function", "name", name, "stmts", len(body))

	return &ast.Function{
		Base: ast.Base{Pos: pos, End: p.end},
		Name: string(name),
		Body: body,
	}, nil
}

func (p *Parser) parseStatement(ctx context.Context) (ast.Stmt, error) {
	if kw, ok := p.tk.(Keyword); ok {
		switch kw {
		case KwReturn:
			return p.parseReturn(ctx)
		}
	}

	return nil, p.unexpected(KwReturn)
}

func (p *Parser) parseReturn(ctx context.Context) (x ast.Stmt, err error) {
	pos := p.pos

	err = p.expect(ctx, KwReturn)
	if err != nil {
		return nil, err
	}

	outer := p.in
	p.in = "return statement"

	val, err := p.parseExpr(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "return")
	}

	err = p.expect(ctx, Char(';'))
	if err != nil {
		return nil, err
	}

	p.in = outer

	tlog.SpanFromContext(ctx).Printw("return", "val", val)

	return ast.Return{
		Base:  ast.Base{Pos: pos, End: p.end},
		Value: val,
	}, nil
}

func (p *Parser) parseExpr(ctx context.Context) (ast.Expr, error) {
	switch tk := p.tk.(type) {
	case Number:
		x := ast.Number{
			Base:  ast.Base{Pos: p.pos},
			Value: int32(tk),
		}

		err := p.advance(ctx)
		if err != nil {
			return nil, err
		}

		x.End = p.end

		return x, nil
	default:
		return nil, p.unexpected(Number(0))
	}
}

// expect consumes the current token if it equals want.
func (p *Parser) expect(ctx context.Context, want Token) error {
	if p.tk != want {
		return p.unexpected(want)
	}

	return p.advance(ctx)
}

func (p *Parser) unexpected(want ...Token) error {
	if _, ok := p.tk.(EOF); ok && p.in != "" {
		return UnterminatedError{
			What: p.in,
			Want: want[0],
			Pos:  p.pos,
		}
	}

	return NewUnexpected(p.tk, p.pos, want...)
}

func (p *Parser) advance(ctx context.Context) (err error) {
	if tr := tlog.SpanFromContext(ctx); tr.If("next_token") {
		defer func(prev Token) {
			tr.Printw("next token", "prev", prev, "tk", p.tk, "pos", p.pos, "err", err, "from", loc.Callers(1, 3))
		}(p.tk)
	}

	p.end = p.t.End()

	p.tk, err = p.t.Next()
	p.pos = p.t.Pos()

	return err
}
