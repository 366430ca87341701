package format

import (
	"context"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/tinyc/compiler/ast"
)

// Format renders x as C source text and appends it to b.
func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	switch x := x.(type) {
	case *ast.Function:
		return formatFunc(ctx, b, x, 0)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}

func formatFunc(ctx context.Context, b []byte, x *ast.Function, d int) ([]byte, error) {
	b = app(b, d, "int %s() {\n", x.Name)

	b, err := formatBlock(ctx, b, x.Body, d+1)
	if err != nil {
		return nil, errors.Wrap(err, "func %v", x.Name)
	}

	b = app(b, d, "}\n")

	return b, nil
}

func formatBlock(ctx context.Context, b []byte, x []ast.Stmt, d int) (_ []byte, err error) {
	for _, s := range x {
		switch s := s.(type) {
		case ast.Return:
			b = app(b, d, "return ")

			b, err = formatExpr(ctx, b, s.Value, d)
			if err != nil {
				return nil, errors.Wrap(err, "return")
			}

			b = append(b, ";\n"...)
		default:
			return nil, errors.New("unsupported stmt: %T", s)
		}
	}

	return b, nil
}

func formatExpr(ctx context.Context, b []byte, x ast.Expr, d int) ([]byte, error) {
	switch x := x.(type) {
	case ast.Number:
		b = hfmt.Appendf(b, "%d", x.Value)
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}

	return b, nil
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"
	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)
	return b
}
