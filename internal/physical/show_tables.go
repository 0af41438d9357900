package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
)

// ShowTables emits one row per user table, in catalog insertion order,
// excluding the synthetic vinyl_table.
type ShowTables struct{}

func (ShowTables) Child() Operator { return nil }
func (ShowTables) Name() string    { return "ShowTablesExec" }
func (ShowTables) Schema() catalog.Schema {
	s, _ := catalog.NewSchema([]catalog.Column{{Name: "name", Type: value.String}})
	return s
}

func (op ShowTables) Execute(ctx *ExecContext) (RowIter, error) {
	tables := ctx.Catalog.UserTables()
	rows := make([]tuple.Tuple, len(tables))
	for i, t := range tables {
		rows[i] = tuple.Tuple{value.NewString(t.Name)}
	}
	return &sliceIter{rows: rows}, nil
}
