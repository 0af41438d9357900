// Package logicalplan implements the relational operator tree produced
// by the planner from a parsed SQL statement (spec §4.C5): a closed sum
// type, built bottom-up, consumed by the physical plan builder.
package logicalplan

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/expr"
	"vinyldb/internal/tuple"
)

// Node is the marker interface implemented by every logical plan
// variant.
type Node interface {
	isLogicalPlanNode()
}

// CreateTable installs a new table descriptor and persists its defining
// SQL text into the vinyl_table sub-tree.
type CreateTable struct {
	Name   string
	Schema catalog.Schema
	PK     int
	SQL    string
}

// Insert appends rows, already checked for arity and per-column type,
// into an existing table.
type Insert struct {
	Table string
	Rows  []tuple.Tuple
}

// TableScan reads every row of a named table in its native (primary
// key byte) order.
type TableScan struct {
	Name string
}

// Filter keeps rows from its input for which Predicate evaluates true.
type Filter struct {
	Predicate expr.Expr
	Input     Node
}

// Projection evaluates Exprs against each input row to produce a row of
// the given output Schema.
type Projection struct {
	Exprs  []expr.Expr
	Schema catalog.Schema
	Input  Node
}

// Limit skips Offset rows (if set) then takes at most Limit rows (if
// set) from its input, in order.
type Limit struct {
	Offset *int64
	Limit  *int64
	Input  Node
}

// ShowTables lists every user table in catalog insertion order.
type ShowTables struct{}

// DescribeTable lists the columns of a named table.
type DescribeTable struct {
	Name string
}

// Explain wraps another plan, whose operator tree is reported instead
// of executed.
type Explain struct {
	Plan Node
}

// OneRowPlaceholder is the single empty-tuple source used for
// `SELECT <const-expr>` with no FROM clause.
type OneRowPlaceholder struct{}

func (CreateTable) isLogicalPlanNode()       {}
func (Insert) isLogicalPlanNode()            {}
func (TableScan) isLogicalPlanNode()         {}
func (Filter) isLogicalPlanNode()            {}
func (Projection) isLogicalPlanNode()        {}
func (Limit) isLogicalPlanNode()             {}
func (ShowTables) isLogicalPlanNode()        {}
func (DescribeTable) isLogicalPlanNode()     {}
func (Explain) isLogicalPlanNode()           {}
func (OneRowPlaceholder) isLogicalPlanNode() {}
