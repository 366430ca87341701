package format

import (
	"context"

	"tlog.app/go/errors"

	"github.com/slowlang/tinyc/compiler/ast"
)

// Dump renders the tree structure of x, one node per line.
//
//	Function main [0:24]
//		Return [13:22]
//			Number 2 [20:21]
func Dump(ctx context.Context, b []byte, x any) (_ []byte, err error) {
	return dump(ctx, b, x, 0)
}

func dump(ctx context.Context, b []byte, x any, d int) (_ []byte, err error) {
	switch x := x.(type) {
	case *ast.Function:
		b = app(b, d, "Function %s [%d:%d]\n", x.Name, x.Pos, x.End)

		for i, s := range x.Body {
			b, err = dump(ctx, b, s, d+1)
			if err != nil {
				return nil, errors.Wrap(err, "stmt %d", i)
			}
		}
	case ast.Return:
		b = app(b, d, "Return [%d:%d]\n", x.Pos, x.End)

		b, err = dump(ctx, b, x.Value, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "value")
		}
	case ast.Number:
		b = app(b, d, "Number %d [%d:%d]\n", x.Value, x.Pos, x.End)
	default:
		return nil, errors.New("unsupported node: %T", x)
	}

	return b, nil
}
