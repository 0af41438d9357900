package physical

import (
	"vinyldb/internal/catalog"
)

// CreateTable registers a new table's descriptor in the catalog, opens
// its storage sub-tree, and persists its defining SQL into vinyl_table.
// Output schema is empty; it emits no rows.
type CreateTable struct {
	Name        string
	TableSchema catalog.Schema
	PK          int
	SQL         string
}

func (CreateTable) Child() Operator        { return nil }
func (CreateTable) Name() string           { return "CreateTableExec" }
func (CreateTable) Schema() catalog.Schema { s, _ := catalog.NewSchema(nil); return s }

func (op CreateTable) Execute(ctx *ExecContext) (RowIter, error) {
	table := catalog.Table{Name: op.Name, Schema: op.TableSchema, PK: op.PK, SQL: op.SQL}

	// Catalog uniqueness was already checked by the planner; a failure
	// here is a programmer error, not a user-facing one.
	if err := ctx.Catalog.Add(table); err != nil {
		return nil, err
	}

	// Any storage failure past this point leaves catalog and disk
	// diverged; spec §9 names this a known, unrecovered gap and treats
	// it as fatal for the session.
	if _, err := ctx.Storage.Sub(op.Name); err != nil {
		return nil, err
	}

	vinylTable, err := ctx.Storage.Sub(catalog.VinylTableName)
	if err != nil {
		return nil, err
	}
	if _, err := vinylTable.Insert(catalog.VinylTableKey(op.Name), catalog.VinylTableRow(op.Name, op.SQL)); err != nil {
		return nil, err
	}

	return &sliceIter{}, nil
}
