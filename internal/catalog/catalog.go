package catalog

import (
	"vinyldb/internal/storage"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// Catalog is the process-wide, insertion-ordered registry of table
// descriptors. It always contains the synthetic vinyl_table entry once
// Bootstrap has run.
type Catalog struct {
	tables []Table
	index  map[string]int
}

// ParseCreateTable reparses a stored CREATE TABLE statement back into a
// table descriptor. Catalog takes this as a callback, rather than
// depending on the planner package directly, to avoid an import cycle
// (the planner needs Catalog to resolve names while planning, and the
// catalog needs the planner only during this one bootstrap step — see
// spec §9's "bootstrap loop" note).
type ParseCreateTable func(sql string) (Table, error)

// Bootstrap opens (creating if absent) the vinyl_table sub-tree,
// installs its own hard-coded descriptor first, then rebuilds every
// user table descriptor by re-parsing the CREATE TABLE SQL stored in
// each of its rows. This ordering is load-bearing: it is the only way
// the catalog can read vinyl_table's rows before vinyl_table exists as
// a catalog entry in its own right.
func Bootstrap(store *storage.Engine, parse ParseCreateTable) (*Catalog, error) {
	sub, err := store.Sub(VinylTableName)
	if err != nil {
		return nil, err
	}

	cat := &Catalog{index: make(map[string]int)}
	cat.install(vinylTableDescriptor())

	var iterErr error
	datatypes := vinylTableSchema.Datatypes()
	err = sub.Iterate(func(_, val []byte) bool {
		row := tuple.Decode(val, datatypes)
		sql := row[1].String()

		table, perr := parse(sql)
		if perr != nil {
			iterErr = perr
			return false
		}
		cat.install(table)
		return true
	})
	if err != nil {
		return nil, err
	}
	if iterErr != nil {
		return nil, iterErr
	}
	return cat, nil
}

func (c *Catalog) install(t Table) {
	c.index[t.Name] = len(c.tables)
	c.tables = append(c.tables, t)
}

// Add registers a new table descriptor, failing with ErrTableExists if
// the name is already registered.
func (c *Catalog) Add(t Table) error {
	if _, exists := c.index[t.Name]; exists {
		return vinylerr.ErrTableExists.New(t.Name)
	}
	c.install(t)
	return nil
}

// Get looks up a table descriptor by name, failing with ErrTableMissing
// if absent.
func (c *Catalog) Get(name string) (Table, error) {
	i, ok := c.index[name]
	if !ok {
		return Table{}, vinylerr.ErrTableMissing.New(name)
	}
	return c.tables[i], nil
}

// Tables iterates every registered table descriptor in insertion order,
// including vinyl_table itself.
func (c *Catalog) Tables() []Table {
	return c.tables
}

// UserTables iterates every registered table descriptor except the
// synthetic vinyl_table, in insertion order — the set ShowTables
// displays.
func (c *Catalog) UserTables() []Table {
	out := make([]Table, 0, len(c.tables))
	for _, t := range c.tables {
		if t.Name == VinylTableName {
			continue
		}
		out = append(out, t)
	}
	return out
}

// VinylTableKey encodes a table name the same way a row's primary key
// is encoded for the vinyl_table sub-tree: a length-prefixed string
// per §4.C1's string encoding (spec §6).
func VinylTableKey(tableName string) []byte {
	return value.NewString(tableName).Encode()
}

// VinylTableRow encodes the (name, sql) row stored for a user table.
func VinylTableRow(tableName, sql string) []byte {
	row := tuple.Tuple{value.NewString(tableName), value.NewString(sql)}
	return row.Encode()
}
