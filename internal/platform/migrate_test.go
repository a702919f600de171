package platform

import (
	"strings"
	"testing"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := Migrations()
	if err != nil {
		t.Fatalf("Migrations() error: %v", err)
	}
	want := []string{"0001_init.down.sql", "0001_init.up.sql"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Migrations() = %v, want %v", names, want)
	}
}

func TestInitMigrationCreatesAssessments(t *testing.T) {
	data, err := migrationsFS.ReadFile("migrations/0001_init.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, col := range []string{"CREATE TABLE IF NOT EXISTS assessments", "sub_paths", "ledger", "updated_at"} {
		if !strings.Contains(string(data), col) {
			t.Errorf("expected %q in init migration", col)
		}
	}
}
