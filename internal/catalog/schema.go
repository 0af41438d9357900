// Package catalog implements the schema and table registry: an
// insertion-ordered column list per table, and a process-wide,
// insertion-ordered table registry bootstrapped from the reserved
// vinyl_table sub-tree.
package catalog

import (
	"strings"

	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// Column pairs a name with its datatype. Order within a Schema's column
// slice is significant: it defines on-disk and in-tuple position.
type Column struct {
	Name string
	Type value.DataType
}

// Schema is an ordered mapping from column name to datatype. Column
// names are unique within a schema; the empty schema is valid.
type Schema struct {
	columns []Column
	index   map[string]int
}

// NewSchema builds a schema from columns in order, failing with
// ErrColumnExists on the first duplicate name.
func NewSchema(columns []Column) (Schema, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := index[c.Name]; exists {
			return Schema{}, vinylerr.ErrColumnExists.New(c.Name)
		}
		index[c.Name] = i
	}
	cp := make([]Column, len(columns))
	copy(cp, columns)
	return Schema{columns: cp, index: index}, nil
}

// Columns returns the schema's columns in order. Callers must not
// mutate the returned slice.
func (s Schema) Columns() []Column { return s.columns }

// NumColumns reports the column count.
func (s Schema) NumColumns() int { return len(s.columns) }

// ColumnAt returns the column at the given positional index.
func (s Schema) ColumnAt(i int) Column { return s.columns[i] }

// Datatypes returns each column's datatype tag in order, the shape the
// tuple codec consumes directly.
func (s Schema) Datatypes() []value.DataType {
	out := make([]value.DataType, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.Type
	}
	return out
}

// Index returns the positional index of a column by name, failing with
// ErrColumnMissing (carrying the set of candidate names) if absent.
func (s Schema) Index(name string) (int, error) {
	if i, ok := s.index[name]; ok {
		return i, nil
	}
	return 0, vinylerr.ErrColumnMissing.New(name, strings.Join(s.names(), ", "))
}

// DataType returns a column's datatype by name.
func (s Schema) DataType(name string) (value.DataType, error) {
	i, err := s.Index(name)
	if err != nil {
		return 0, err
	}
	return s.columns[i].Type, nil
}

func (s Schema) names() []string {
	out := make([]string, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.Name
	}
	return out
}
