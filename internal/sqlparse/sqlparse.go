// Package sqlparse wraps github.com/pganalyze/pg_query_go, the genuine
// PostgreSQL-grammar parser two independent corpus repos
// (ariga-atlas's pgparse, zoravur-postgres-spreadsheet-view's
// pg_lineage) use to turn SQL text into a typed AST. This is the single
// seam between vinyldb's core and the parser collaborator spec §1 names
// as external.
package sqlparse

import (
	"strconv"
	"strings"

	pgquery "github.com/pganalyze/pg_query_go/v5"

	"vinyldb/internal/vinylerr"
)

// Parse tokenises and parses sql, returning every statement it contains
// in source order.
func Parse(sql string) ([]*pgquery.RawStmt, error) {
	result, err := pgquery.Parse(sql)
	if err != nil {
		return nil, vinylerr.ErrParse.Wrap(err, sql)
	}
	return result.Stmts, nil
}

// ParseOne parses sql and requires it to contain exactly one statement,
// the shape every entry point into the session expects (spec §9:
// one statement at a time).
func ParseOne(sql string) (*pgquery.RawStmt, error) {
	stmts, err := Parse(sql)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, vinylerr.ErrParse.New("expected exactly one statement, got " + strconv.Itoa(len(stmts)))
	}
	return stmts[0], nil
}

// IsExplainTable recognises the literal surface `EXPLAIN TABLE <ident>`.
// pg_query_go has no such AST node — Postgres itself has no such
// statement, \d being a psql client-side command rather than SQL — so
// this one form is matched against the raw SQL text before handing off
// to the real parser, per the decision recorded in SPEC_FULL.md.
func IsExplainTable(sql string) (ident string, ok bool) {
	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(sql), ";"))
	if len(fields) != 3 {
		return "", false
	}
	if !strings.EqualFold(fields[0], "EXPLAIN") || !strings.EqualFold(fields[1], "TABLE") {
		return "", false
	}
	return fields[2], true
}
