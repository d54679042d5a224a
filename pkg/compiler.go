package foldeq

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/llir/llvm/ir"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is one compiled statement.
type Result struct {
	Input string
	// Parsed is the tree as parsed.
	Parsed *Statement
	// Statement is the optimized tree, or Parsed when optimization is off.
	Statement *Statement
}

func (r *Result) String() string {
	return r.Statement.String()
}

type CompilerOption func(c *Compiler)

// WithLogger sets the logger receiving per-stage debug entries.
func WithLogger(logger *zap.Logger) CompilerOption {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithoutOptimization skips constant folding.
func WithoutOptimization() CompilerOption {
	return func(c *Compiler) {
		c.optimize = false
	}
}

func WithParserOptions(opts ...ParserOption) CompilerOption {
	return func(c *Compiler) {
		c.parserOpts = append(c.parserOpts, opts...)
	}
}

// WithConcurrency bounds the number of statements CompileAll works on at
// once. n <= 0 means no bound.
func WithConcurrency(n int) CompilerOption {
	return func(c *Compiler) {
		c.jobs = n
	}
}

// Compiler runs parse, optimize and render over input lines. It is safe for
// concurrent use; every call gets its own Parser.
type Compiler struct {
	logger     *zap.Logger
	optimize   bool
	parserOpts []ParserOption
	jobs       int
}

func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		logger:   zap.NewNop(),
		optimize: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile parses and optimizes a single statement.
func (c *Compiler) Compile(input string) (*Result, error) {
	start := time.Now()

	parsed, err := NewParser(c.parserOpts...).ParseStatement(input)
	if err != nil {
		c.logger.Debug("parse failed", zap.String("input", input), zap.Error(err))
		return nil, errors.Wrapf(err, "parsing %q", input)
	}
	c.logger.Debug("parsed",
		zap.String("input", input),
		zap.Stringer("parsed", parsed),
		zap.Duration("duration", time.Since(start)))

	res := &Result{
		Input:     input,
		Parsed:    parsed,
		Statement: parsed,
	}
	if !c.optimize {
		return res, nil
	}

	start = time.Now()
	res.Statement = parsed.Optimize()
	c.logger.Debug("optimized",
		zap.Stringer("optimized", res.Statement),
		zap.Duration("duration", time.Since(start)))

	return res, nil
}

// CompileAll compiles independent statements concurrently. Results keep the
// order of lines; the first failure stops the batch.
func (c *Compiler) CompileAll(ctx context.Context, lines []string) ([]*Result, error) {
	results := make([]*Result, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	if c.jobs > 0 {
		g.SetLimit(c.jobs)
	}

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := c.Compile(line)
			if err != nil {
				return errors.Wrapf(err, "statement %d", i+1)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// CompileFromReader compiles every non-blank line of reader. Lines have no
// length limit.
func (c *Compiler) CompileFromReader(ctx context.Context, reader io.Reader) ([]*Result, error) {
	var lines []string

	r := bufio.NewReader(reader)
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "reading statements")
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}

		if err == io.EOF {
			break
		}
	}

	return c.CompileAll(ctx, lines)
}

// Emit lowers a compiled statement to LLVM IR.
func (c *Compiler) Emit(res *Result) (*ir.Module, error) {
	mod, err := NewLLVMGenerator(res.Statement).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "emitting %q", res.Input)
	}

	c.logger.Debug("emitted", zap.Int("funcs", len(mod.Funcs)))
	return mod, nil
}
