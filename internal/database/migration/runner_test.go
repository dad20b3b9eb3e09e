package migration

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__add_index.sql": {Data: []byte("CREATE INDEX x ON y (z);")},
		"V1__init.sql":      {Data: []byte("CREATE TABLE y (z INT);")},
		"README.md":         {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(fsys)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("unexpected order: %d, %d", migs[0].Version, migs[1].Version)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct checksums")
	}
}

func TestLoadMigrations_RejectsEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}}
	if _, err := loadMigrations(fsys); err == nil {
		t.Fatalf("expected error for empty migration")
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	migs, err := loadMigrations(sub)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) == 0 || migs[0].Name != "init" {
		t.Fatalf("expected embedded init migration, got %+v", migs)
	}
}
