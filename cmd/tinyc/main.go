package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/tinyc/compiler"
	"github.com/slowlang/tinyc/compiler/format"
)

func main() {
	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "parse C files and print syntax tree",
		Action:      parseAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("file,f", "", "C file to parse"),
			cli.NewFlag("verbosity,v", "", "logger verbosity topics"),
		},
	}

	fmtCmd := &cli.Command{
		Name:        "fmt",
		Description: "parse C files and print them formatted",
		Action:      fmtAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("verbosity,v", "", "logger verbosity topics"),
		},
	}

	app := &cli.Command{
		Name:        "tinyc",
		Description: "tinyc is a parser for a tiny subset of C",
		Commands: []*cli.Command{
			parseCmd,
			fmtCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func parseAct(c *cli.Command) (err error) {
	ctx := setup(c)

	files, err := inputFiles(c.String("file"), c.Args)
	if err != nil {
		return err
	}

	for _, a := range files {
		err = compiler.CheckExt(a)
		if err != nil {
			return err
		}

		fmt.Printf("Parsing C file: %v...\n", a)

		x, err := compiler.ParseFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		b, err := format.Dump(ctx, nil, x)
		if err != nil {
			return errors.Wrap(err, "dump %v", a)
		}

		fmt.Printf("Successfully parsed C file!\nAST:\n%s", b)
	}

	return nil
}

func fmtAct(c *cli.Command) (err error) {
	ctx := setup(c)

	files, err := inputFiles("", c.Args)
	if err != nil {
		return err
	}

	for _, a := range files {
		x, err := compiler.ParseFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		b, err := format.Format(ctx, nil, x)
		if err != nil {
			return errors.Wrap(err, "format %v", a)
		}

		fmt.Printf("%s", b)
	}

	return nil
}

// inputFiles joins the --file flag value with positional args.
func inputFiles(file string, args []string) ([]string, error) {
	var files []string

	if file != "" {
		files = append(files, file)
	}

	files = append(files, args...)

	if len(files) == 0 {
		return nil, errors.New("no files to parse")
	}

	return files, nil
}

func setup(c *cli.Command) context.Context {
	if v := c.String("verbosity"); v != "" {
		tlog.SetVerbosity(v)
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	return ctx
}
