// Package physical implements the pull-based operator tree (spec
// §4.C7): one operator per logical plan node, built bottom-up by Build
// and executed by pulling tuples through a forward-only RowIter.
// Grounded in shape on original_source/src/physical_plan/*.rs (one file
// per operator) and on the teacher's row-iterator convention of
// returning io.EOF at the end of a stream.
package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/storage"
	"vinyldb/internal/tuple"
)

// ExecContext carries everything an operator needs to run: the catalog
// (for CreateTable/ShowTables/DescribeTable) and the storage
// engine (for CreateTable/Insert/TableScan). It is the one mutable,
// session-owned object every Execute call threads through.
type ExecContext struct {
	Catalog *catalog.Catalog
	Storage *storage.Engine
}

// RowIter is a forward-only, single-shot pull cursor. Next returns
// io.EOF once exhausted; it is never called again afterwards and is
// never restarted — callers that want to re-iterate rebuild the
// physical plan instead (spec §4.C7's "no operator is re-executable").
type RowIter interface {
	Next(ctx *ExecContext) (tuple.Tuple, error)
}

// Operator is the common interface every physical plan node implements.
type Operator interface {
	// Schema is the output schema the operator advertises.
	Schema() catalog.Schema
	// Execute builds this operator's row iterator. Single-shot: not
	// restartable, not cloned.
	Execute(ctx *ExecContext) (RowIter, error)
	// Child returns the operator's input, or nil for a leaf — used by
	// Explain and by tests that walk the tree.
	Child() Operator
	// Name is the short, stable label Explain prints.
	Name() string
}
