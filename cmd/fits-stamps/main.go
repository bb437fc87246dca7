// fits-stamps converts FITS images into 3x3 stamp mosaic PNGs for
// quick visual inspection. Point it at a single file or a directory;
// in directory mode the conversions run in parallel and a failure in
// one file never stops the rest.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/astroshed/fits-stamps/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("fits-stamps %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return nil
	}

	flags := pflag.NewFlagSet("fits-stamps", pflag.ContinueOnError)
	trimsec := flags.String("trimsec", strings.Join(pipeline.DefaultTrimKeys, ","),
		"CSV list of FITS header keys to try, in order, for the trim section")
	fitsext := flags.Int("fitsext", 0,
		"FITS extension number containing the image to work on (default: automatic detection for normal and compressed files)")
	stampsize := flags.Int("stampsize", 256, "individual stamp size in pixels")
	separatorwidth := flags.Int("separatorwidth", 1, "width of the separator lines between stamps in pixels")
	fitsglob := flags.String("fitsglob", "*.fits*", "file glob used to recognize FITS files in a directory")
	workers := flags.Int("workers", runtime.NumCPU(), "number of parallel workers for directory mode")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: fits-stamps [flags] <target>\n\n")
		fmt.Fprintf(os.Stderr, "target is a single FITS file or a directory of FITS files to convert.\n")
		fmt.Fprintf(os.Stderr, "Each input produces a PNG with the same base name alongside it.\n\n")
		fmt.Fprintln(os.Stderr, flags.FlagUsages())
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected exactly one target, got %d", flags.NArg())
	}
	target := flags.Arg(0)

	// Diagnostics go to stderr; stdout carries only the per-file
	// conversion report lines.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	opts := pipeline.Options{
		Ext:            pipeline.AutoExt(),
		TrimKeys:       strings.Split(*trimsec, ","),
		StampSize:      *stampsize,
		SeparatorWidth: *separatorwidth,
	}
	if flags.Changed("fitsext") {
		opts.Ext = pipeline.ExplicitExt(*fitsext)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("the target file or directory %s does not exist", target)
	}

	if info.IsDir() {
		results, err := pipeline.ConvertDir(target, *fitsglob, *workers, opts)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Err == nil {
				fmt.Printf("%s -> %s OK\n", r.Input, r.Output)
			}
		}
		// Per-file failures were already logged; the batch itself
		// completed, so the exit code stays zero.
		return nil
	}

	out, err := pipeline.Convert(target, pipeline.OutputPath(target), opts)
	if err != nil {
		return fmt.Errorf("failed to make a stamp mosaic for %s: %w", target, err)
	}
	fmt.Printf("%s -> %s OK\n", target, out)
	return nil
}
