package physical_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"vinyldb/internal/catalog"
	"vinyldb/internal/physical"
	"vinyldb/internal/planner"
	"vinyldb/internal/storage"
	"vinyldb/internal/value"
)

type testEngine struct {
	store *storage.Engine
	cat   *catalog.Catalog
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "vinyl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	cat, err := catalog.Bootstrap(store, planner.ParseCreateTable)
	require.NoError(t, err)
	return &testEngine{store: store, cat: cat}
}

// run plans, builds, and fully executes sql, returning every row it
// produced.
func (e *testEngine) run(t *testing.T, sql string) [][]value.Value {
	t.Helper()
	node, err := planner.Plan(e.cat, sql)
	require.NoError(t, err)

	op, err := physical.Build(e.cat, node)
	require.NoError(t, err)

	ctx := &physical.ExecContext{Catalog: e.cat, Storage: e.store}
	it, err := op.Execute(ctx)
	require.NoError(t, err)

	var rows [][]value.Value
	for {
		row, err := it.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows = append(rows, []value.Value(row))
	}
	return rows
}

func TestCreateTableThenShowTables(t *testing.T) {
	e := newTestEngine(t)
	e.run(t, "CREATE TABLE widgets (id INT64, name STRING)")

	rows := e.run(t, "SHOW TABLES")
	require.Len(t, rows, 1)
	require.Equal(t, "widgets", rows[0][0].String())
}

func TestCreateTableDuplicateNameFails(t *testing.T) {
	e := newTestEngine(t)
	e.run(t, "CREATE TABLE widgets (id INT64)")

	_, err := planner.Plan(e.cat, "CREATE TABLE widgets (id INT64)")
	require.Error(t, err)
}

func TestInsertThenSelectOrdersByPrimaryKey(t *testing.T) {
	e := newTestEngine(t)
	e.run(t, "CREATE TABLE widgets (id INT64, name STRING)")
	e.run(t, "INSERT INTO widgets VALUES (2, 'b')")
	e.run(t, "INSERT INTO widgets VALUES (1, 'a')")
	e.run(t, "INSERT INTO widgets VALUES (3, 'c')")

	rows := e.run(t, "SELECT * FROM widgets")
	require.Len(t, rows, 3)
	require.Equal(t, int64(1), rows[0][0].Int64())
	require.Equal(t, int64(2), rows[1][0].Int64())
	require.Equal(t, int64(3), rows[2][0].Int64())
}

func TestFilteredSelectWithLimit(t *testing.T) {
	e := newTestEngine(t)
	e.run(t, "CREATE TABLE widgets (id INT64)")
	e.run(t, "INSERT INTO widgets VALUES (1)")
	e.run(t, "INSERT INTO widgets VALUES (2)")
	e.run(t, "INSERT INTO widgets VALUES (3)")
	e.run(t, "INSERT INTO widgets VALUES (4)")

	rows := e.run(t, "SELECT * FROM widgets WHERE id > 1 LIMIT 2")
	require.Len(t, rows, 2)
	require.Equal(t, int64(2), rows[0][0].Int64())
	require.Equal(t, int64(3), rows[1][0].Int64())
}

func TestConstantSelectWithNoFrom(t *testing.T) {
	e := newTestEngine(t)
	rows := e.run(t, "SELECT 1 + 2")
	require.Len(t, rows, 1)
	require.Equal(t, int64(3), rows[0][0].Int64())
}

func TestShowTablesExcludesVinylTable(t *testing.T) {
	e := newTestEngine(t)
	rows := e.run(t, "SHOW TABLES")
	require.Len(t, rows, 0)
}

func TestDescribeTableReportsPrimaryKey(t *testing.T) {
	e := newTestEngine(t)
	e.run(t, "CREATE TABLE widgets (id INT64, name STRING)")

	rows := e.run(t, "EXPLAIN TABLE widgets")
	require.Len(t, rows, 2)
	require.Equal(t, "YES", rows[0][3].String())
	require.Equal(t, "NO", rows[1][3].String())
}

func TestExplainEmitsOperatorNamesRootFirst(t *testing.T) {
	e := newTestEngine(t)
	e.run(t, "CREATE TABLE widgets (id INT64)")

	rows := e.run(t, "EXPLAIN SELECT * FROM widgets WHERE id > 0")
	require.Len(t, rows, 3)
	require.Equal(t, "ExplainExec", rows[0][0].String())
	require.Equal(t, "FilterExec", rows[1][0].String())
	require.Equal(t, "TableScanExec", rows[2][0].String())
}

func TestReopeningSessionPreservesData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vinyl.db")

	store, err := storage.Open(path)
	require.NoError(t, err)
	cat, err := catalog.Bootstrap(store, planner.ParseCreateTable)
	require.NoError(t, err)

	e := &testEngine{store: store, cat: cat}
	e.run(t, "CREATE TABLE widgets (id INT64, name STRING)")
	e.run(t, "INSERT INTO widgets VALUES (1, 'a')")
	require.NoError(t, store.Close())

	store2, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store2.Close() })
	cat2, err := catalog.Bootstrap(store2, planner.ParseCreateTable)
	require.NoError(t, err)

	e2 := &testEngine{store: store2, cat: cat2}
	rows := e2.run(t, "SELECT * FROM widgets")
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0][0].Int64())
	require.Equal(t, "a", rows[0][1].String())
}
