package planner

import (
	"strings"

	pgquery "github.com/pganalyze/pg_query_go/v5"

	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// convertDataType maps a parsed column type name onto one of vinyldb's
// five supported datatypes, per the SQL surface in spec §6: BOOL,
// INT64/BIGINT, FLOAT64/DOUBLE, TIMESTAMP, STRING/TEXT. Postgres
// resolves BIGINT to "int8" and DOUBLE PRECISION to "float8" internally
// (both possibly prefixed with the "pg_catalog" schema name), so the
// match looks only at the last name component.
func convertDataType(ty *pgquery.TypeName) (value.DataType, error) {
	names := ty.GetNames()
	if len(names) == 0 {
		return 0, vinylerr.ErrUnimplemented.New("empty type name")
	}
	last := strings.ToLower(names[len(names)-1].GetString_().GetSval())

	switch last {
	case "bool", "boolean":
		return value.Bool, nil
	case "int64", "int8", "bigint":
		return value.Int64, nil
	case "float64", "float8", "double", "double precision":
		return value.Float64, nil
	case "timestamp":
		return value.Timestamp, nil
	case "string", "text":
		return value.String, nil
	default:
		return 0, vinylerr.ErrUnimplemented.New("datatype " + last)
	}
}
