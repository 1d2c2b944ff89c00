// Command funge98 runs Befunge-98 and Unefunge-98 programs, adapted from
// the teacher's cmd/sentra entry point: the same subcommand-plus-flags
// shape (args.rs/runner.rs in original_source play the equivalent role),
// retargeted from Sentra's lex/parse/compile/run pipeline onto a single
// Funge-Space load-and-tick loop.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"funge98/internal/devserver"
	"funge98/internal/ferrors"
	"funge98/internal/interp"
	"funge98/internal/repl"
	"funge98/internal/tracestore"
)

const version = "funge98 v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "repl":
		err = repl.Start(os.Stdin, os.Stdout)
	case "dump":
		err = dumpCmd(os.Args[2:])
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		var fe *ferrors.FungeError
		if errors.As(err, &fe) {
			fmt.Fprintf(os.Stderr, "Runtime error: %v\n", fe)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  funge98 run [-s bytes] [-u PROGRAM] [-trace-db driver:dsn] [-live addr] [source]
  funge98 repl
  funge98 dump [-s bytes] [-u PROGRAM] [source]
  funge98 version`)
}

func commonFlags(name string) (*flag.FlagSet, *int, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	width := fs.Int("s", 4, "cell width in bytes: 1, 2, 4, 8, or 16")
	program := fs.String("u", "", "run PROGRAM as a single literal Unefunge-98 line instead of reading a source file")
	return fs, width, program
}

func runCmd(args []string) error {
	fs, width, program := commonFlags("run")
	traceDB := fs.String("trace-db", "", "driver:dsn for an optional execution trace store, e.g. sqlite:./trace.db")
	live := fs.String("live", "", "address to serve a live /trace websocket feed on, e.g. :8099")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lines, unefunge, err := sourceLines(fs, *program)
	if err != nil {
		return err
	}

	cfg := interp.Config{
		Width:    *width,
		Unefunge: unefunge,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Warnings: os.Stderr,
		Argv:     fs.Args(),
		Env:      os.Environ(),
	}

	if *traceDB != "" {
		driver, dsn, ok := strings.Cut(*traceDB, ":")
		if !ok {
			return errors.Errorf("invalid -trace-db %q, want driver:dsn", *traceDB)
		}
		store, err := tracestore.Open(context.Background(), driver, dsn)
		if err != nil {
			return errors.Wrap(err, "opening trace store")
		}
		defer store.Close()
		cfg.Trace = store
	}

	var liveServer *devserver.Server
	if *live != "" {
		liveServer = devserver.NewServer()
		defer liveServer.Close()
		cfg.Live = liveServer
		go serveLive(*live, liveServer)
	}

	ip := interp.New(lines, cfg)
	code, err := ip.Run()
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil
}

func serveLive(addr string, s *devserver.Server) {
	mux := http.NewServeMux()
	mux.HandleFunc("/trace", s.Handler)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("devserver: %v", err)
	}
}

func dumpCmd(args []string) error {
	fs, width, program := commonFlags("dump")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lines, unefunge, err := sourceLines(fs, *program)
	if err != nil {
		return err
	}
	cfg := interp.Config{Width: *width, Unefunge: unefunge}
	ip := interp.New(lines, cfg)
	fmt.Printf("%# v\n", pretty.Formatter(ip))
	return nil
}

// sourceLines resolves a command's program source: a non-empty -u flag
// supplies the literal program as a single line and forces Unefunge mode,
// bypassing file I/O entirely; otherwise the source is read from the
// required positional file argument.
func sourceLines(fs *flag.FlagSet, program string) ([][]byte, bool, error) {
	if program != "" {
		return [][]byte{[]byte(program)}, true, nil
	}
	if fs.NArg() < 1 {
		return nil, false, errors.Errorf("%s requires a source file path or -u PROGRAM", fs.Name())
	}
	lines, err := readLines(fs.Arg(0))
	if err != nil {
		return nil, false, errors.Wrap(err, "reading source")
	}
	return lines, false, nil
}

func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
