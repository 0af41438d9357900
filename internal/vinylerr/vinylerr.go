// Package vinylerr gives every leaf category of the error taxonomy in
// spec §7 a concrete, parameterized kind, using the
// gopkg.in/src-d/go-errors.v1 errors.NewKind pattern.
package vinylerr

import "gopkg.in/src-d/go-errors.v1"

// Catalog errors (§7.2).
var (
	ErrTableExists   = errors.NewKind("table '%s' already exists")
	ErrTableMissing  = errors.NewKind("table '%s' does not exist")
	ErrColumnExists  = errors.NewKind("column '%s' already exists")
	ErrColumnMissing = errors.NewKind("column '%s' not found, candidates: %s")
)

// Plan errors (§7.3).
var (
	ErrMismatchedArity = errors.NewKind("table '%s' has %d columns but %d were supplied")
	ErrMismatchedType  = errors.NewKind("column %d of table '%s' should be %s, found %s")
	ErrConversion      = errors.NewKind("could not convert %v to %s")
	ErrNonUintLimit    = errors.NewKind("LIMIT/OFFSET must be a non-negative integer, got %v")
	ErrNonConstant     = errors.NewKind("expression must be constant here: %s")
	ErrWildcardNoFrom  = errors.NewKind("SELECT * requires a FROM clause")
	ErrUnimplemented   = errors.NewKind("not implemented: %s")
)

// Expression evaluation errors (§7.4).
var (
	ErrMixedTypes  = errors.NewKind("cannot apply operator to mismatched types %s and %s")
	ErrUnsupported = errors.NewKind("operator %s not supported for datatype %s")
	ErrNotConstant = errors.NewKind("expression is not constant: %s")
)

// Parse, storage, and I/O errors (§7.1, §7.5, §7.6).
var (
	ErrParse   = errors.NewKind("parse error: %s")
	ErrStorage = errors.NewKind("storage error: %s")
	ErrIO      = errors.NewKind("I/O error: %s")
)

// Meta-command errors (§4.C10).
var ErrUnknownMetaCmd = errors.NewKind("unknown command or invalid arguments: %s")
