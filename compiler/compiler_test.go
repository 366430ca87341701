package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/tinyc/compiler/ast"
	"github.com/slowlang/tinyc/compiler/front"
)

func TestParseFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	name := filepath.Join(dir, "main.c")

	err := os.WriteFile(name, []byte("int main() {\n\treturn 42;\n}\n"), 0o644)
	require.NoError(t, err)

	x, err := ParseFile(ctx, name)
	require.NoError(t, err)

	f, ok := x.(*ast.Function)
	require.True(t, ok, "%T", x)
	assert.Equal(t, "main", f.Name)
	require.Len(t, f.Body, 1)
	assert.Equal(t, int32(42), f.Body[0].(ast.Return).Value.(ast.Number).Value)
}

func TestParseFileExtension(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"main.h", "main.cc", "main", "main.C", "c"} {
		_, err := ParseFile(ctx, name)

		var ee ExtensionError
		require.ErrorAs(t, err, &ee, "%q", name)
		assert.Equal(t, name, ee.Name)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "none.c"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrorLocation(t *testing.T) {
	ctx := context.Background()

	_, err := Parse(ctx, "a.c", []byte("int main() {\n\treturn ;\n}\n"))

	var ue front.UnexpectedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, front.Char(';'), ue.Got)
	assert.Contains(t, err.Error(), "a.c:2:9: ")

	_, err = Parse(ctx, "b.c", []byte("int main() {\n\treturn 0;\n"))

	var te front.UnterminatedError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "b.c:3:1: ")
}

func TestCheckExt(t *testing.T) {
	assert.NoError(t, CheckExt("main.c"))
	assert.NoError(t, CheckExt("dir.h/main.c"))

	err := CheckExt("x.h")

	var ee ExtensionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "x.h", ee.Name)
	assert.EqualError(t, err, `file "x.h" is not a C file (.c extension required)`)
}
