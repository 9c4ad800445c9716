// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/table/main.go
// Summary: table command: renders delimited text as a box-drawn table.
// Usage: table [flags] [FILE|-]

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/framegrace/texeltable/config"
	"github.com/framegrace/texeltable/internal/source"
	"github.com/framegrace/texeltable/internal/termsize"
	"github.com/framegrace/texeltable/tablefmt"
)

const (
	programName = "table"
	version     = "0.1"
)

const (
	exitOK       = 0
	exitConfig   = 1
	exitIO       = 2
	exitInternal = 3
)

// exitError carries the status a failure maps to.
type exitError struct {
	code  int
	err   error
	quiet bool // already reported
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func configError(err error) error { return &exitError{code: exitConfig, err: err} }
func ioError(err error) error     { return &exitError{code: exitIO, err: err} }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Table: panic: %v\n%s", r, debug.Stack())
			fmt.Fprintf(stderr, "%s: internal error: %v\n", programName, r)
			code = exitInternal
		}
	}()

	err := execute(ctx, args, stdin, stdout, stderr)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) && ee.quiet {
		return ee.code
	}
	fmt.Fprintf(stderr, "%s: %v\n", programName, err)
	if ee != nil {
		if ee.code == exitConfig {
			fmt.Fprintf(stderr, "Try '%s -h' for more information.\n", programName)
		}
		return ee.code
	}
	return exitIO
}

func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := settingsFromConfig(nil)
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cli.bind(fs)
	showVersion := fs.Bool("v", false, "print the version and exit")
	fs.BoolVar(showVersion, "version", false, "print the version and exit")
	dbPath := fs.String("sqlite", "", "render the result of -query run against this SQLite `database`")
	query := fs.String("query", "", "SQL `query` to run with -sqlite")
	logPath := fs.String("log", "", "append diagnostics to `file`")
	saveConfig := fs.Bool("save-config", false, "store the effective settings in the user config file and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [FILE|-]\n\n", programName)
		fmt.Fprintf(fs.Output(), "Reads delimited text from FILE, or stdin when FILE is - or missing,\n")
		fmt.Fprintf(fs.Output(), "and writes it as a box-drawn table.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		// The flag package has already printed the problem and the usage.
		return &exitError{code: exitConfig, err: err, quiet: true}
	}
	if *showVersion {
		fmt.Fprintf(stdout, "%s v%s\n", programName, version)
		return nil
	}

	closeLog, err := setupLog(*logPath)
	if err != nil {
		return ioError(err)
	}
	defer closeLog()

	cfg := config.System()
	if err := config.Err(); err != nil {
		return configError(fmt.Errorf("config: %w", err))
	}
	s := settingsFromConfig(cfg)
	s.overlay(fs, cli)

	if *saveConfig {
		return save(s, stderr)
	}

	if fs.NArg() > 1 {
		return configError(fmt.Errorf("%w: only one input file may be given", tablefmt.ErrInvalidOption))
	}
	if (*dbPath == "") != (*query == "") {
		return configError(fmt.Errorf("%w: -sqlite and -query must be used together", tablefmt.ErrInvalidOption))
	}
	if *dbPath != "" && fs.NArg() > 0 {
		return configError(fmt.Errorf("%w: -sqlite cannot be combined with an input file", tablefmt.ErrInvalidOption))
	}

	if s.AutoWidth {
		f, _ := stdout.(*os.File)
		s.Width = termsize.Width(f, tablefmt.DefaultWidth)
	}
	opts, err := s.options()
	if err != nil {
		return configError(err)
	}

	var in io.Reader
	if *dbPath != "" {
		qr, err := source.Query(ctx, *dbPath, *query, opts.Delimiter)
		if err != nil {
			return ioError(err)
		}
		defer qr.Close()
		in = qr
	} else {
		src, err := source.Open(fs.Arg(0), stdin)
		if err != nil {
			return ioError(err)
		}
		defer src.Close()
		in = src.Reader
	}

	tbl, err := tablefmt.New(stdout, opts)
	if err != nil {
		return configError(err)
	}
	if err := render(ctx, tbl, source.NewLineReader(in, s.MaxLineBytes)); err != nil {
		return ioError(err)
	}
	return nil
}

// render copies every line into tbl and closes it.
func render(ctx context.Context, tbl *tablefmt.Table, lr *source.LineReader) error {
	for {
		if err := ctx.Err(); err != nil {
			tbl.Close()
			return err
		}
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			tbl.Close()
			return fmt.Errorf("read input: %w", err)
		}
		if err := tbl.WriteLine(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := tbl.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Printf("Table: rendered %d rows", tbl.Rows())
	return nil
}

func save(s settings, stderr io.Writer) error {
	if _, err := s.options(); err != nil {
		return configError(err)
	}
	cfg := config.Clone(config.System())
	s.store(cfg)
	config.SetSystem(cfg)
	if err := config.SaveSystem(); err != nil {
		return ioError(fmt.Errorf("save config: %w", err))
	}
	if path, err := config.Path(); err == nil {
		fmt.Fprintf(stderr, "%s: settings saved to %s\n", programName, path)
	}
	return nil
}

// setupLog points the standard logger at path, or discards log output when
// path is empty.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
