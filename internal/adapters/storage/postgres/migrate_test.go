package postgres

import (
	"testing"
	"testing/fstest"
)

func TestMigrator_LoadSortsAndSkipsUnversioned(t *testing.T) {
	m := &Migrator{files: fstest.MapFS{
		"migrations/010_late.sql":     {Data: []byte("SELECT 10;")},
		"migrations/002_next.sql":     {Data: []byte("SELECT 2;")},
		"migrations/001_init.sql":     {Data: []byte("SELECT 1;")},
		"migrations/README.md":        {Data: []byte("docs")},
		"migrations/draft_x.sql":      {Data: []byte("SELECT 0;")},
		"migrations/nounderscore.sql": {Data: []byte("SELECT 0;")},
	}}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 migrations, got %d: %+v", len(got), got)
	}
	want := []int{1, 2, 10}
	for i, v := range want {
		if got[i].Version != v {
			t.Fatalf("position %d: expected version %d, got %d", i, v, got[i].Version)
		}
	}
}

func TestMigrator_EmbeddedInitMigration(t *testing.T) {
	got, err := NewMigrator(nil).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) == 0 || got[0].Version != 1 || got[0].Name != "001_init.sql" {
		t.Fatalf("unexpected embedded migrations: %+v", got)
	}
}
