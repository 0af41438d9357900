package catalog

// Table is the descriptor triple {name, schema, primary-key column
// index}. Tables are immutable once installed in the catalog — there is
// no ALTER in this model.
type Table struct {
	Name   string
	Schema Schema
	PK     int

	// SQL is the original CREATE TABLE statement text, stored so the
	// catalog can persist and later re-derive this descriptor from the
	// vinyl_table sub-tree (see Catalog.Bootstrap).
	SQL string
}
