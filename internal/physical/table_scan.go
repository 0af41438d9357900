package physical

import (
	"io"

	"vinyldb/internal/catalog"
	"vinyldb/internal/storage"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
)

// TableScan reads a table's storage sub-tree in its native, byte-ordered
// key order, decoding each value against the table's schema. Unlike the
// original Rust implementation (which collects the whole sub-tree into
// a Vec up front), this pulls one row at a time from a live storage
// cursor, matching spec §4.C7's lazy, pull-based contract.
type TableScan struct {
	TableName   string
	TableSchema catalog.Schema
}

func (t TableScan) Child() Operator        { return nil }
func (t TableScan) Name() string           { return "TableScanExec" }
func (t TableScan) Schema() catalog.Schema { return t.TableSchema }

func (t TableScan) Execute(ctx *ExecContext) (RowIter, error) {
	sub, err := ctx.Storage.Sub(t.TableName)
	if err != nil {
		return nil, err
	}
	cursor, err := sub.Cursor()
	if err != nil {
		return nil, err
	}
	return &tableScanIter{cursor: cursor, datatypes: t.TableSchema.Datatypes()}, nil
}

type tableScanIter struct {
	cursor    *storage.Cursor
	datatypes []value.DataType
	closed    bool
}

func (it *tableScanIter) Next(*ExecContext) (tuple.Tuple, error) {
	if it.closed {
		return nil, io.EOF
	}
	_, val, ok := it.cursor.Next()
	if !ok {
		it.closed = true
		if err := it.cursor.Close(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return tuple.Decode(val, it.datatypes), nil
}
