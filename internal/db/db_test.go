package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/opencanteen/canteen/internal/db"
)

// TestOpenPragmas verifies the DSN parameters: WAL journal mode for
// concurrent reads with a single writer, and foreign keys on so the cascade
// and SET NULL rules actually fire.
func TestOpenPragmas(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "pragma_test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var mode string
	conn.Raw("PRAGMA journal_mode").Scan(&mode)
	if mode != "wal" {
		t.Errorf("expected journal_mode=wal, got %q", mode)
	}

	var fk int
	conn.Raw("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Errorf("expected foreign_keys=1, got %d", fk)
	}
}

// TestOpenCreatesClassIdentityIndex verifies the expression index that GORM
// cannot create from struct tags.
func TestOpenCreatesClassIdentityIndex(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "index_test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}

	found := indexNames(t, sqlDB, "classes")
	if !found["idx_classes_identity"] {
		t.Errorf("idx_classes_identity missing from classes table; found: %v", found)
	}
}

func indexNames(t *testing.T, sqlDB *sql.DB, table string) map[string]bool {
	t.Helper()
	rows, err := sqlDB.Query("PRAGMA index_list(" + table + ")")
	if err != nil {
		t.Fatalf("PRAGMA index_list: %v", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var seq int
		var name string
		var unique bool
		var origin, partial string
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			t.Fatalf("scan: %v", err)
		}
		out[name] = true
	}
	return out
}
