package postgres

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	migrations, err := loadMigrations(migrationsFS)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("expected at least one migration")
	}

	var prev int64
	for _, m := range migrations {
		if m.Version <= prev {
			t.Fatalf("migrations are not sorted by version: %d after %d", m.Version, prev)
		}
		if m.UpSQL == "" || m.DownSQL == "" {
			t.Fatalf("migration %d_%s is missing a half", m.Version, m.Name)
		}
		prev = m.Version
	}
}

func TestLoadMigrations_MissingHalf(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/0001_init.up.sql": &fstest.MapFile{Data: []byte("SELECT 1")},
	}
	if _, err := loadMigrations(fsys); err == nil {
		t.Fatal("expected error for migration without a down half")
	}
}

func TestLoadMigrations_BadFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/init.sql": &fstest.MapFile{Data: []byte("SELECT 1")},
	}
	if _, err := loadMigrations(fsys); err == nil {
		t.Fatal("expected error for invalid migration file name")
	}
}

func TestLoadMigrations_InconsistentNames(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/0001_init.up.sql":    &fstest.MapFile{Data: []byte("SELECT 1")},
		"sql/migrations/0001_other.down.sql": &fstest.MapFile{Data: []byte("SELECT 1")},
	}
	if _, err := loadMigrations(fsys); err == nil {
		t.Fatal("expected error for inconsistent migration names")
	}
}
