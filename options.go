package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	defaultSuffix = "_seq"
)

// Options configures a seqgen run.
type Options struct {
	// Dir is the package directory to scan.
	Dir string
	// Plural names generated slice types after the plural of the type.
	Plural bool
	// Suffix is appended to the snake_case type name to form the file name.
	Suffix string
	// DryRun writes generated code to Out instead of to files.
	DryRun bool

	Out io.Writer
}

func NewOptions() *Options {
	return &Options{
		Dir:    ".",
		Suffix: defaultSuffix,
		Out:    os.Stdout,
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Dir, "dir", o.Dir, "package directory to scan for @seq markers")
	fs.BoolVar(&o.Plural, "plural", o.Plural, "name slice types after the plural of the element type (Person -> People)")
	fs.StringVar(&o.Suffix, "suffix", o.Suffix, "suffix of generated file names")
	fs.BoolVar(&o.DryRun, "dry-run", o.DryRun, "print generated code instead of writing files")
}

func (o *Options) Validate() error {
	var errs []error
	if o.Suffix == "" {
		errs = append(errs, errors.New("--suffix must not be empty"))
	} else if strings.ContainsAny(o.Suffix, `/\`) {
		errs = append(errs, fmt.Errorf("--suffix %q must not contain a path separator", o.Suffix))
	}
	info, err := os.Stat(o.Dir)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("--dir: %w", err))
	case !info.IsDir():
		errs = append(errs, fmt.Errorf("--dir %s is not a directory", o.Dir))
	}
	return errors.Join(errs...)
}
