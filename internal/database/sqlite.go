package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLiteDriverName is the database/sql driver whose connections fold case with Unicode rules
const SQLiteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// SQLite's built-in lower() only folds ASCII letters
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

// OpenSQLite returns a gorm dialector for the SQLite database at dsn
func OpenSQLite(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: SQLiteDriverName, DSN: dsn})
}

func unicodeLower(value any) any {
	switch v := value.(type) {
	case string:
		return strings.ToLower(v)
	case []byte:
		// NULL arrives as a nil slice
		if v == nil {
			return nil
		}
		return strings.ToLower(string(v))
	default:
		return value
	}
}
