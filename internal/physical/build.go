package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/logicalplan"
	"vinyldb/internal/vinylerr"
)

// Build translates a logical plan, produced by the planner, into the
// physical operator tree that executes it. Table-scoped nodes resolve
// their schema/primary-key against cat so the resulting operators carry
// everything Execute needs without a further catalog lookup at run
// time.
func Build(cat *catalog.Catalog, node logicalplan.Node) (Operator, error) {
	switch n := node.(type) {
	case logicalplan.CreateTable:
		return CreateTable{Name: n.Name, TableSchema: n.Schema, PK: n.PK, SQL: n.SQL}, nil

	case logicalplan.Insert:
		table, err := cat.Get(n.Table)
		if err != nil {
			return nil, err
		}
		return Insert{Table: n.Table, PK: table.PK, Rows: n.Rows}, nil

	case logicalplan.TableScan:
		table, err := cat.Get(n.Name)
		if err != nil {
			return nil, err
		}
		return TableScan{TableName: n.Name, TableSchema: table.Schema}, nil

	case logicalplan.Filter:
		input, err := Build(cat, n.Input)
		if err != nil {
			return nil, err
		}
		return Filter{Predicate: n.Predicate, Input: input}, nil

	case logicalplan.Projection:
		input, err := Build(cat, n.Input)
		if err != nil {
			return nil, err
		}
		return Projection{Exprs: n.Exprs, OutputSchema: n.Schema, Input: input}, nil

	case logicalplan.Limit:
		input, err := Build(cat, n.Input)
		if err != nil {
			return nil, err
		}
		return Limit{Offset: n.Offset, Limit: n.Limit, Input: input}, nil

	case logicalplan.ShowTables:
		return ShowTables{}, nil

	case logicalplan.DescribeTable:
		return DescribeTable{TableName: n.Name}, nil

	case logicalplan.Explain:
		plan, err := Build(cat, n.Plan)
		if err != nil {
			return nil, err
		}
		return Explain{Plan: plan}, nil

	case logicalplan.OneRowPlaceholder:
		return OneRowPlaceholder{}, nil

	default:
		return nil, vinylerr.ErrUnimplemented.New(node)
	}
}
