package catalog

import "vinyldb/internal/value"

// VinylTableName is the reserved sub-tree and catalog entry that holds
// one (name, sql) row per user table, used to rebuild the catalog at
// startup. Grounded on original_source/src/catalog/vinyl_table.rs.
const VinylTableName = "vinyl_table"

// vinylTableSchema and vinylTablePK are fixed for the life of the
// process; vinyl_table itself is never reparsed from its own row (it has
// no row in itself, per spec §3).
var vinylTableSchema = mustSchema([]Column{
	{Name: "name", Type: value.String},
	{Name: "sql", Type: value.String},
})

const vinylTablePK = 0

func mustSchema(columns []Column) Schema {
	s, err := NewSchema(columns)
	if err != nil {
		panic(err)
	}
	return s
}

// vinylTableDescriptor builds the hard-coded descriptor installed by
// Catalog.Bootstrap before any user-table row is read back.
func vinylTableDescriptor() Table {
	return Table{Name: VinylTableName, Schema: vinylTableSchema, PK: vinylTablePK}
}
