// Package backend names the storage backends field values are persisted
// to. The constants key the per-backend type overrides declared with
// BackendType on field builders, and identify adapters to the persistence
// engine.
package backend

// Supported backends.
const (
	// Postgres is the PostgreSQL backend.
	Postgres = "postgres"
	// MySQL is the MySQL/MariaDB backend.
	MySQL = "mysql"
	// SQLite is the SQLite backend.
	SQLite = "sqlite"
	// LDAP is the LDAP directory backend. Binary field values are always
	// stored inside the directory.
	LDAP = "ldap"
)

// Valid reports whether name is a known backend.
func Valid(name string) bool {
	switch name {
	case Postgres, MySQL, SQLite, LDAP:
		return true
	}
	return false
}
