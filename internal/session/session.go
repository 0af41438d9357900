// Package session ties the pipeline together — parse, plan, build,
// execute, collect — behind a single entry point, the way the
// teacher's own Engine.Query wraps the stages of MySQL statement
// execution into one call (spec §4.C9).
package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	pgquery "github.com/pganalyze/pg_query_go/v5"

	"vinyldb/internal/catalog"
	"vinyldb/internal/physical"
	"vinyldb/internal/planner"
	"vinyldb/internal/sqlparse"
	"vinyldb/internal/storage"
	"vinyldb/internal/tuple"
	"vinyldb/internal/vinylerr"
	"vinyldb/internal/vinyllog"
)

// Options holds the settings a session can toggle at run time via
// meta-commands (spec §4.C10), mirroring the teacher driver's own
// Options-struct-of-settings pattern.
type Options struct {
	// ShowAST logs the parsed statement's AST at Info level.
	ShowAST bool
	// Timer logs the wall-clock duration of every statement at Info
	// level (at Error level when the statement fails).
	Timer bool
}

// Result is the outcome of a single statement: its output schema and
// every row it produced, already fully collected.
type Result struct {
	Schema catalog.Schema
	Rows   []tuple.Tuple
}

// Session owns one open database directory: its storage engine and the
// catalog bootstrapped from it.
type Session struct {
	Options Options

	store *storage.Engine
	cat   *catalog.Catalog
	log   *logrus.Logger
}

// Open opens (creating if absent) the database directory at dataPath
// and bootstraps its catalog. The bbolt file lives at
// <dataPath>/vinyl.db.
func Open(dataPath string, opts Options, jsonLog bool) (*Session, error) {
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return nil, vinylerr.ErrIO.Wrap(err, dataPath)
	}
	store, err := storage.Open(filepath.Join(dataPath, "vinyl.db"))
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Bootstrap(store, planner.ParseCreateTable)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &Session{
		Options: opts,
		store:   store,
		cat:     cat,
		log:     vinyllog.New(jsonLog),
	}, nil
}

// Close releases the underlying storage engine.
func (s *Session) Close() error {
	return s.store.Close()
}

// RunStatement parses, plans, builds, executes, and collects a single
// SQL statement. Errors at any stage are returned as-is; callers at the
// REPL layer are responsible for spec §7's "Error: " prefix on display.
func (s *Session) RunStatement(sql string) (Result, error) {
	start := time.Now()
	fields := vinyllog.StatementFields(statementKind(sql))
	s.log.WithFields(fields).Debug("running statement")

	if s.Options.ShowAST {
		if stmts, err := sqlparse.Parse(sql); err == nil {
			s.log.WithFields(fields).WithField("ast", fmt.Sprintf("%+v", stmts)).Info("parsed AST")
		}
	}

	result, err := s.run(sql)

	entry := s.log.WithFields(fields)
	if s.Options.Timer {
		entry = entry.WithField("elapsed", time.Since(start))
	}
	if err != nil {
		entry.WithError(err).Error("statement failed")
		return Result{}, err
	}
	if s.Options.Timer {
		entry.Info("statement succeeded")
	} else {
		entry.Debug("statement succeeded")
	}
	return result, nil
}

func (s *Session) run(sql string) (Result, error) {
	node, err := planner.Plan(s.cat, sql)
	if err != nil {
		return Result{}, err
	}

	op, err := physical.Build(s.cat, node)
	if err != nil {
		return Result{}, err
	}

	ctx := &physical.ExecContext{Catalog: s.cat, Storage: s.store}
	it, err := op.Execute(ctx)
	if err != nil {
		return Result{}, err
	}

	var rows []tuple.Tuple
	for {
		row, err := it.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, err
		}
		rows = append(rows, row)
	}

	return Result{Schema: op.Schema(), Rows: rows}, nil
}

// statementKind extracts the outermost node's type for logging, falling
// back to "unparsed" if it doesn't parse (the error itself is reported
// separately by RunStatement).
func statementKind(sql string) string {
	if ident, ok := sqlparse.IsExplainTable(sql); ok {
		return "ExplainTable(" + ident + ")"
	}
	stmt, err := sqlparse.ParseOne(sql)
	if err != nil {
		return "unparsed"
	}
	switch stmt.GetStmt().GetNode().(type) {
	case *pgquery.Node_CreateStmt:
		return "CreateTable"
	case *pgquery.Node_InsertStmt:
		return "Insert"
	case *pgquery.Node_SelectStmt:
		return "Select"
	case *pgquery.Node_VariableShowStmt:
		return "Show"
	case *pgquery.Node_ExplainStmt:
		return "Explain"
	default:
		return "unknown"
	}
}
