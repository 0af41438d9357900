// Command vinyldb is a minimal, single-user REPL over the vinyldb
// engine: read a line, dispatch it as a meta-command or a statement,
// print the result. It deliberately does not replicate the original
// implementation's line-editing, history, or colored output — those
// are out of scope here.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"vinyldb/internal/config"
	"vinyldb/internal/metacmd"
	"vinyldb/internal/session"
	"vinyldb/internal/tuple"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	opts := session.Options{ShowAST: cfg.ShowAST, Timer: cfg.Timer}
	sess, err := session.Open(cfg.DataPath, opts, cfg.JSONLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer sess.Close()

	repl(sess, os.Stdin, os.Stdout)
}

func repl(sess *session.Session, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "vinyldb> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, "vinyldb> ")
			continue
		}

		if metacmd.IsMetaCommand(line) {
			runMeta(sess, line, out)
		} else {
			runStatement(sess, line, out)
		}
		fmt.Fprint(out, "vinyldb> ")
	}
}

func runMeta(sess *session.Session, line string, out *os.File) {
	cmd, err := metacmd.Parse(line)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	switch cmd.Kind {
	case metacmd.Help:
		fmt.Fprintln(out, metacmd.HelpText())
	case metacmd.ASTOn:
		sess.Options.ShowAST = true
	case metacmd.ASTOff:
		sess.Options.ShowAST = false
	case metacmd.TimerOn:
		sess.Options.Timer = true
	case metacmd.TimerOff:
		sess.Options.Timer = false
	}
}

func runStatement(sess *session.Session, line string, out *os.File) {
	result, err := sess.RunStatement(line)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	printResult(out, result)
}

func printResult(out *os.File, result session.Result) {
	columns := result.Schema.Columns()
	if len(columns) > 0 {
		names := make([]string, len(columns))
		for i, c := range columns {
			names[i] = c.Name
		}
		fmt.Fprintln(out, strings.Join(names, " | "))
	}
	for _, row := range result.Rows {
		fmt.Fprintln(out, formatRow(row))
	}
}

func formatRow(row tuple.Tuple) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = v.String()
	}
	return strings.Join(parts, " | ")
}
