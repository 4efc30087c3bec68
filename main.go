package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chidiwilliams/minilox/ast"
	"github.com/chidiwilliams/minilox/config"
	"github.com/chidiwilliams/minilox/interpret"
	"github.com/chidiwilliams/minilox/parse"
	"github.com/chidiwilliams/minilox/scan"
)

func main() {
	var filePath, configPath string

	flag.StringVar(&filePath, "filePath", "", "File path")
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := newRunner(os.Stdout, os.Stderr, cfg)
	if filePath == "" {
		r.runPrompt(os.Stdin)
	} else {
		os.Exit(r.runFile(filePath))
	}
}

type runner struct {
	interpreter *interpret.Interpreter
	stdOut      io.Writer
	stdErr      io.Writer
	cfg         config.Config
	logger      *slog.Logger
}

func newRunner(stdOut io.Writer, stdErr io.Writer, cfg config.Config) *runner {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	return &runner{
		interpreter: interpret.NewInterpreter(stdOut),
		stdOut:      stdOut,
		stdErr:      stdErr,
		cfg:         cfg,
		logger:      slog.New(slog.NewTextHandler(stdErr, &slog.HandlerOptions{Level: level})),
	}
}

// runPrompt runs each line read from stdIn against the same
// interpreter, so variables declared on one line stay visible
func (r *runner) runPrompt(stdIn io.Reader) {
	inputScanner := bufio.NewScanner(stdIn)
	for {
		fmt.Fprint(r.stdOut, r.cfg.Prompt)
		if !inputScanner.Scan() {
			break
		}

		if err := r.run(inputScanner.Text()); err != nil {
			r.report(err)
		}
	}
	if err := inputScanner.Err(); err != nil {
		r.logger.Error("reading input", "err", err)
	}
}

func (r *runner) runFile(path string) int {
	file, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(r.stdErr, err)
		return 66
	}

	if err := r.run(string(file)); err != nil {
		r.report(err)
		return exitCode(err)
	}
	return 0
}

// run scans, parses and executes the source text. A failing stage
// stops the pipeline and its error is returned wrapped in an *Error.
func (r *runner) run(source string) error {
	tokens, err := scan.NewScanner(source).ScanTokens()
	if err != nil {
		return &Error{Stage: StageScan, Err: err}
	}
	r.logger.Debug("scanned source", "tokens", len(tokens))
	if r.cfg.DumpTokens {
		for _, token := range tokens {
			fmt.Fprintln(r.stdErr, token)
		}
	}

	parser := parse.NewParser(tokens)
	var statements []ast.Stmt
	if r.cfg.Recover {
		statements, err = parser.ParseAll()
	} else {
		statements, err = parser.Parse()
	}
	if err != nil {
		return &Error{Stage: StageParse, Err: err}
	}
	r.logger.Debug("parsed program", "statements", len(statements))
	if r.cfg.DumpAST {
		for _, stmt := range statements {
			fmt.Fprintln(r.stdErr, ast.FormatStmt(stmt))
		}
	}

	if err := r.interpreter.Interpret(statements); err != nil {
		return &Error{Stage: StageRuntime, Err: err}
	}
	r.logger.Debug("executed program")
	return nil
}

func (r *runner) report(err error) {
	r.logger.Debug("run failed", "err", err)
	for _, msg := range diagnostics(err) {
		fmt.Fprintln(r.stdErr, msg)
	}
}
