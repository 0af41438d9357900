package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
)

// DescribeTable lists the columns of a named table: one row per column
// giving its name, type, nullability, and whether it is the primary
// key.
type DescribeTable struct {
	TableName string
}

func (DescribeTable) Child() Operator { return nil }
func (DescribeTable) Name() string    { return "DescribeTableExec" }
func (DescribeTable) Schema() catalog.Schema {
	s, _ := catalog.NewSchema([]catalog.Column{
		{Name: "column_name", Type: value.String},
		{Name: "column_type", Type: value.String},
		{Name: "null", Type: value.String},
		{Name: "key", Type: value.String},
	})
	return s
}

func (op DescribeTable) Execute(ctx *ExecContext) (RowIter, error) {
	table, err := ctx.Catalog.Get(op.TableName)
	if err != nil {
		return nil, err
	}

	columns := table.Schema.Columns()
	rows := make([]tuple.Tuple, len(columns))
	for i, c := range columns {
		key := "NO"
		if i == table.PK {
			key = "YES"
		}
		rows[i] = tuple.Tuple{
			value.NewString(c.Name),
			value.NewString(c.Type.String()),
			value.NewString("YES"),
			value.NewString(key),
		}
	}
	return &sliceIter{rows: rows}, nil
}
