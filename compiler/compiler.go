package compiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/tinyc/compiler/ast"
	"github.com/slowlang/tinyc/compiler/front"
)

type (
	// ExtensionError is returned for files without .c extension.
	ExtensionError struct {
		Name string
	}
)

const Ext = ".c"

func ParseFile(ctx context.Context, name string) (x ast.Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse file", "name", name)
	defer tr.Finish("err", &err)

	err = CheckExt(name)
	if err != nil {
		return nil, err
	}

	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tr.Printw("read file", "size", len(text), "name", name)

	return Parse(ctx, name, text)
}

// CheckExt reports whether name looks like a C source file.
func CheckExt(name string) error {
	if filepath.Ext(name) != Ext {
		return ExtensionError{Name: name}
	}

	return nil
}

// Parse parses text and prefixes errors with name:line:col of the failure.
func Parse(ctx context.Context, name string, text []byte) (ast.Program, error) {
	t := front.NewTokenizer(text)
	p := front.NewParser(t)

	x, err := p.ParseProgram(ctx)

	var perr interface {
		Position() int
	}

	switch {
	case err == nil:
		return x, nil
	case errors.As(err, &perr):
		line, col := t.LineCol(perr.Position())

		return nil, errors.Wrap(err, "%v:%d:%d", name, line, col)
	default:
		return nil, errors.Wrap(err, "%v", name)
	}
}

func (e ExtensionError) Error() string {
	return fmt.Sprintf("file %q is not a C file (%v extension required)", e.Name, Ext)
}
