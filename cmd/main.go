package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	foldeq "go.foldeq.dev/pkg"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "foldeq:", err)
		os.Exit(1)
	}
}

type options struct {
	noOptimize bool
	dump       bool
	emitLLVM   bool
	batch      bool
	jobs       int
	prompt     bool
	verbose    bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "foldeq",
		Short: "Fold the constants of an equation read from stdin",
		Long: `Reads a statement such as "2^10 + x = 3 - 5" from stdin, folds its
constant subexpressions and writes the result as one line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, in, out, errOut)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.noOptimize, "no-optimize", false, "print the statement as parsed")
	flags.BoolVar(&opts.dump, "dump", false, "print the tree structure instead of infix text")
	flags.BoolVar(&opts.emitLLVM, "emit-llvm", false, "print LLVM IR for both sides")
	flags.BoolVar(&opts.batch, "batch", false, "compile every line of stdin")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "statements compiled at once in batch mode (0 is unbounded)")
	flags.BoolVar(&opts.prompt, "prompt", false, "prompt for the statement on stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline stages to stderr")

	return cmd
}

func run(ctx context.Context, opts options, in io.Reader, out, errOut io.Writer) error {
	logger := newLogger(opts.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	copts := []foldeq.CompilerOption{
		foldeq.WithLogger(logger),
		foldeq.WithConcurrency(opts.jobs),
	}
	if opts.noOptimize {
		copts = append(copts, foldeq.WithoutOptimization())
	}
	c := foldeq.NewCompiler(copts...)

	if opts.batch {
		results, err := c.CompileFromReader(ctx, in)
		if err != nil {
			return err
		}

		for _, res := range results {
			if err := write(c, opts, out, res); err != nil {
				return err
			}
		}

		return nil
	}

	if opts.prompt {
		fmt.Fprint(errOut, "Input Statement: ")
	}

	line, err := readLine(in)
	if err != nil {
		return err
	}

	res, err := c.Compile(line)
	if err != nil {
		return err
	}

	return write(c, opts, out, res)
}

func write(c *foldeq.Compiler, opts options, out io.Writer, res *foldeq.Result) error {
	switch {
	case opts.emitLLVM:
		mod, err := c.Emit(res)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(out, mod)
		return err
	case opts.dump:
		foldeq.Dump(out, res.Statement)
		return nil
	default:
		_, err := fmt.Fprintln(out, res)
		return err
	}
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading statement")
	}

	if err == io.EOF && line == "" {
		return "", errors.New("no statement on stdin")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)

	return zap.New(core)
}
