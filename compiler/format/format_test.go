package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/tinyc/compiler/ast"
	"github.com/slowlang/tinyc/compiler/front"
)

func TestFormat(t *testing.T) {
	ctx := context.Background()

	x, err := front.Parse(ctx, []byte("int   f(\n) {return 1;\n\n return 2 ;}"))
	require.NoError(t, err)

	b, err := Format(ctx, nil, x)
	require.NoError(t, err)

	assert.Equal(t, "int f() {\n\treturn 1;\n\treturn 2;\n}\n", string(b))

	y, err := front.Parse(ctx, b)
	require.NoError(t, err)

	c, err := Format(ctx, []byte("// f\n"), y)
	require.NoError(t, err)

	assert.Equal(t, "// f\n"+string(b), string(c))
}

func TestDump(t *testing.T) {
	ctx := context.Background()

	x, err := front.Parse(ctx, []byte("int main() { return 2; }"))
	require.NoError(t, err)

	b, err := Dump(ctx, nil, x)
	require.NoError(t, err)

	assert.Equal(t, `Function main [0:24]
	Return [13:22]
		Number 2 [20:21]
`, string(b))
}

func TestUnsupported(t *testing.T) {
	ctx := context.Background()

	_, err := Format(ctx, nil, ast.Number{Value: 1})
	assert.Error(t, err)

	_, err = Dump(ctx, nil, "main")
	assert.Error(t, err)

	_, err = Dump(ctx, nil, &ast.Function{Name: "f", Body: []ast.Stmt{ast.Return{}}})
	assert.Error(t, err)
}
