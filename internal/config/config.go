// Package config resolves the settings cmd/vinyldb needs at startup,
// following the teacher driver's own Options-struct-of-settings
// pattern (see internal/session.Options) rather than introducing a
// document format the spec never asked for.
package config

import (
	"flag"
	"os"
	"strconv"
)

// Config holds every setting the REPL needs before it can open a
// session.
type Config struct {
	// DataPath is the directory bbolt stores the database file under.
	DataPath string
	// ShowAST mirrors session.Options.ShowAST's initial value.
	ShowAST bool
	// Timer mirrors session.Options.Timer's initial value.
	Timer bool
	// JSONLog selects vinyllog's JSON formatter instead of its default
	// text formatter.
	JSONLog bool
}

const (
	envDataPath = "VINYLDB_DATA"
	envAST      = "VINYLDB_AST"
	envTimer    = "VINYLDB_TIMER"
	envJSONLog  = "VINYLDB_LOG_JSON"
)

// Parse resolves a Config from command-line flags, falling back to
// environment variables, and finally to hard-coded defaults, in that
// order of precedence.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("vinyldb", flag.ContinueOnError)

	cfg := defaultsFromEnv()
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "path to the database data directory")
	fs.BoolVar(&cfg.ShowAST, "ast", cfg.ShowAST, "show the parsed AST of each statement")
	fs.BoolVar(&cfg.Timer, "timer", cfg.Timer, "show elapsed time after each statement")
	fs.BoolVar(&cfg.JSONLog, "json-log", cfg.JSONLog, "emit structured logs as JSON instead of text")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultsFromEnv() Config {
	cfg := Config{DataPath: "vinyl.db"}
	if v, ok := os.LookupEnv(envDataPath); ok {
		cfg.DataPath = v
	}
	if v, ok := lookupBool(envAST); ok {
		cfg.ShowAST = v
	}
	if v, ok := lookupBool(envTimer); ok {
		cfg.Timer = v
	}
	if v, ok := lookupBool(envJSONLog); ok {
		cfg.JSONLog = v
	}
	return cfg
}

func lookupBool(name string) (bool, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
