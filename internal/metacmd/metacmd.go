// Package metacmd parses the dot-prefixed REPL commands (spec §4.C10):
// a closed set, never routed through the SQL parser. Applying a parsed
// command to the session is left to the caller (cmd/vinyldb).
package metacmd

import (
	"strings"

	"vinyldb/internal/vinylerr"
)

// Kind enumerates the supported meta-commands.
type Kind int

const (
	Help Kind = iota
	ASTOn
	ASTOff
	TimerOn
	TimerOff
)

// Command is a parsed meta-command, ready to be applied to a session.
type Command struct {
	Kind Kind
}

const helpText = `.help          show this message
.ast on|off    show the parsed AST of each statement
.timer on|off  show elapsed time after each statement`

// HelpText is the text printed for .help.
func HelpText() string { return helpText }

// IsMetaCommand reports whether line is a dot-command rather than SQL.
func IsMetaCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ".")
}

// Parse recognises a single dot-command line, failing with
// ErrUnknownMetaCmd for anything it doesn't.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return Command{}, vinylerr.ErrUnknownMetaCmd.New(line)
	}

	switch strings.ToLower(fields[0]) {
	case ".help":
		if len(fields) != 1 {
			return Command{}, vinylerr.ErrUnknownMetaCmd.New(line)
		}
		return Command{Kind: Help}, nil

	case ".ast":
		kind, err := onOff(fields, ASTOn, ASTOff)
		if err != nil {
			return Command{}, vinylerr.ErrUnknownMetaCmd.New(line)
		}
		return Command{Kind: kind}, nil

	case ".timer":
		kind, err := onOff(fields, TimerOn, TimerOff)
		if err != nil {
			return Command{}, vinylerr.ErrUnknownMetaCmd.New(line)
		}
		return Command{Kind: kind}, nil

	default:
		return Command{}, vinylerr.ErrUnknownMetaCmd.New(line)
	}
}

func onOff(fields []string, on, off Kind) (Kind, error) {
	if len(fields) != 2 {
		return 0, vinylerr.ErrUnknownMetaCmd.New(fields)
	}
	switch strings.ToLower(fields[1]) {
	case "on":
		return on, nil
	case "off":
		return off, nil
	default:
		return 0, vinylerr.ErrUnknownMetaCmd.New(fields)
	}
}
