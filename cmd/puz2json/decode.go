package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"puz_shelf/internal/puz"
	"puz_shelf/internal/report"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type decodeOptions struct {
	format string
	pretty bool
	jobs   int
}

// NewDecodeCmd creates the decode command.
func NewDecodeCmd() *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode FILE|GLOB...",
		Short: "Decode one or more .puz files",
		Long: `Decode one or more .puz files and print them as JSON or Markdown.
Arguments may be doublestar globs such as "puzzles/**/*.puz".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format: json or markdown")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "files decoded in parallel")

	return cmd
}

func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if _, err := os.Stat(arg); err == nil {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// decodeFiles decodes every path, keeping input order. Failures are
// collected per file so one bad file does not hide the others.
func decodeFiles(ctx context.Context, paths []string, jobs int) ([]report.Result, []error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]report.Result, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				errs[i] = err
				return nil
			}
			p, err := puz.Decode(data)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			results[i] = report.Result{Path: path, Puzzle: p}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, []error{err}
	}

	var ok []report.Result
	var failed []error
	for i := range paths {
		if errs[i] != nil {
			failed = append(failed, errs[i])
			continue
		}
		ok = append(ok, results[i])
	}
	return ok, failed
}

func runDecode(cmd *cobra.Command, args []string, opts *decodeOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	paths, err := expandArgs(args)
	if err != nil {
		return err
	}

	results, failed := decodeFiles(cmd.Context(), paths, opts.jobs)
	for _, err := range failed {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}

	if len(results) > 0 {
		w, err := report.NewWriter(format, cmd.OutOrStdout(), opts.pretty)
		if err != nil {
			return err
		}
		if err := w.Write(results); err != nil {
			return err
		}
	}

	if len(failed) > 0 {
		return errors.New("some files could not be decoded")
	}
	return nil
}
