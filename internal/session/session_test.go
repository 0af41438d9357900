package session_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"vinyldb/internal/session"
)

func openSession(t *testing.T, path string) *session.Session {
	t.Helper()
	s, err := session.Open(path, session.Options{}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateTableThenShowTables(t *testing.T) {
	require := require.New(t)
	s := openSession(t, filepath.Join(t.TempDir(), "vinyl.db"))

	_, err := s.RunStatement("CREATE TABLE widgets (id INT64, name STRING)")
	require.NoError(err)

	res, err := s.RunStatement("SHOW TABLES")
	require.NoError(err)
	require.Len(res.Rows, 1)
	require.Equal("widgets", res.Rows[0][0].String())
}

func TestDuplicateCreateTableFails(t *testing.T) {
	require := require.New(t)
	s := openSession(t, filepath.Join(t.TempDir(), "vinyl.db"))

	_, err := s.RunStatement("CREATE TABLE widgets (id INT64)")
	require.NoError(err)

	_, err = s.RunStatement("CREATE TABLE widgets (id INT64)")
	require.Error(err)
}

func TestInsertThenSelectOrdering(t *testing.T) {
	require := require.New(t)
	s := openSession(t, filepath.Join(t.TempDir(), "vinyl.db"))

	_, err := s.RunStatement("CREATE TABLE widgets (id INT64, name STRING)")
	require.NoError(err)
	_, err = s.RunStatement("INSERT INTO widgets VALUES (2, 'b')")
	require.NoError(err)
	_, err = s.RunStatement("INSERT INTO widgets VALUES (1, 'a')")
	require.NoError(err)

	res, err := s.RunStatement("SELECT * FROM widgets")
	require.NoError(err)
	require.Len(res.Rows, 2)
	require.Equal(int64(1), res.Rows[0][0].Int64())
	require.Equal(int64(2), res.Rows[1][0].Int64())
}

func TestFilteredSelectWithLimit(t *testing.T) {
	require := require.New(t)
	s := openSession(t, filepath.Join(t.TempDir(), "vinyl.db"))

	_, err := s.RunStatement("CREATE TABLE widgets (id INT64)")
	require.NoError(err)
	for _, v := range []int{1, 2, 3, 4} {
		_, err := s.RunStatement("INSERT INTO widgets VALUES (" + strconv.Itoa(v) + ")")
		require.NoError(err)
	}

	res, err := s.RunStatement("SELECT * FROM widgets WHERE id > 1 LIMIT 2")
	require.NoError(err)
	require.Len(res.Rows, 2)
	require.Equal(int64(2), res.Rows[0][0].Int64())
}

func TestConstantSelect(t *testing.T) {
	require := require.New(t)
	s := openSession(t, filepath.Join(t.TempDir(), "vinyl.db"))

	res, err := s.RunStatement("SELECT 1 + 2")
	require.NoError(err)
	require.Len(res.Rows, 1)
	require.Equal(int64(3), res.Rows[0][0].Int64())
}

func TestExplainRowSequence(t *testing.T) {
	require := require.New(t)
	s := openSession(t, filepath.Join(t.TempDir(), "vinyl.db"))

	_, err := s.RunStatement("CREATE TABLE widgets (id INT64)")
	require.NoError(err)

	res, err := s.RunStatement("EXPLAIN SELECT * FROM widgets WHERE id > 0")
	require.NoError(err)
	require.Len(res.Rows, 3)
	require.Equal("ExplainExec", res.Rows[0][0].String())
	require.Equal("FilterExec", res.Rows[1][0].String())
	require.Equal("TableScanExec", res.Rows[2][0].String())
}

func TestReopeningSessionPreservesData(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "vinyl.db")

	s := openSession(t, path)
	_, err := s.RunStatement("CREATE TABLE widgets (id INT64, name STRING)")
	require.NoError(err)
	_, err = s.RunStatement("INSERT INTO widgets VALUES (1, 'a')")
	require.NoError(err)
	require.NoError(s.Close())

	s2, err := session.Open(path, session.Options{}, false)
	require.NoError(err)
	defer s2.Close()

	res, err := s2.RunStatement("SELECT * FROM widgets")
	require.NoError(err)
	require.Len(res.Rows, 1)
	require.Equal(int64(1), res.Rows[0][0].Int64())
}
