package db

import "database/sql"

// QueryRower is the minimal query surface the schema probes need; both
// *sql.DB and *sql.Tx satisfy it.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// StoreTables lists every table the booking core reads or writes.
var StoreTables = []string{
	"route",
	"bus",
	"buscompany",
	"schedule",
	"user",
	"booking",
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

func HasColumn(q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables returns the subset of StoreTables absent from the current
// schema, for the startup/db-check probe.
func MissingTables(q QueryRower) []string {
	missing := []string{}
	for _, t := range StoreTables {
		if !HasTable(q, t) {
			missing = append(missing, t)
		}
	}
	return missing
}
