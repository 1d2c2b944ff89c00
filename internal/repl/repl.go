// Package repl implements an interactive Befunge-98 session, adapted
// from the teacher's internal/repl/repl.go and original_source's
// repl.rs: same read-a-buffer/evaluate/print loop shape, retargeted from
// Sentra's compile-and-run-a-statement cycle onto "accumulate grid rows
// until the user signals end-of-program, then run them as one Funge-98
// source". Prompts only appear when stdin is a real terminal
// (mattn/go-isatty), and `:dump` renders the interpreter's state with
// kr/pretty instead of a bare %+v.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"funge98/internal/interp"
)

// Start runs the REPL loop, reading from in and writing prompts/output
// to out, until EOF or an `:exit` command.
func Start(in io.Reader, out io.Writer) error {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd())
	}

	scanner := bufio.NewScanner(in)
	var lines [][]byte
	var lastRun *interp.Interpreter

	prompt := func(p string) {
		if interactive {
			fmt.Fprint(out, p)
		}
	}

	fmt.Fprintln(out, "funge98 repl | enter source lines, blank line to run, :exit to quit, :dump to inspect the last run")
	for {
		prompt(">>> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch line {
		case ":exit", ":quit":
			return nil
		case ":dump":
			if lastRun == nil {
				fmt.Fprintln(out, "(no run yet)")
				continue
			}
			fmt.Fprintf(out, "%# v\n", pretty.Formatter(lastRun))
			continue
		case "":
			if len(lines) == 0 {
				continue
			}
			ip := interp.New(lines, interp.Config{
				Width:    4,
				Stdin:    os.Stdin,
				Stdout:   out,
				Warnings: os.Stderr,
			})
			lastRun = ip
			if _, err := ip.Run(); err != nil {
				fmt.Fprintf(out, "\nRuntime error: %v\n", err)
			}
			fmt.Fprintln(out)
			lines = nil
			continue
		}

		lines = append(lines, []byte(line))
	}
	return scanner.Err()
}
