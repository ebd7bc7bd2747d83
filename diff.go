package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dimfu/beatgen/internal/jsondiff"
	applog "github.com/dimfu/beatgen/internal/log"
	"github.com/pkg/errors"
)

func diffUsage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "usage: beatgen diff [-o out.json] A.json B.json\n\n")
		fmt.Fprintf(fs.Output(), "Writes the keys of A that B does not have.\n\n")
		fs.PrintDefaults()
	}
}

func runDiff(argv []string, stdout, stderr io.Writer, logger *applog.Logger) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = diffUsage(fs)
	output := fs.String("o", defaultDiffOutput, "output file, - for stdout")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	aPath, bPath := fs.Arg(0), fs.Arg(1)

	// Both inputs are read before the output is opened, so -o may name one of them.
	missing, err := jsondiff.Diff(aPath, bPath)
	if err != nil {
		logger.Errorf("%v", err)
		return exitFailure
	}

	if *output == "-" {
		if err := jsondiff.Write(stdout, missing); err != nil {
			logger.Errorf("%v", err)
			return exitFailure
		}
		return exitOK
	}

	if err := writeDiff(*output, missing); err != nil {
		logger.Errorf("%v", err)
		return exitFailure
	}
	logger.Infof("%d keys in %s missing from %s, written to %s", missing.Len(), aPath, bPath, *output)
	return exitOK
}

func writeDiff(path string, missing *jsondiff.Object) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := jsondiff.Write(f, missing); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing output")
}
