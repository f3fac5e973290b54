package shared

import (
	"testing"
)

func TestMigrationRunner(t *testing.T) {
	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}

		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Errorf("migrations not sorted: version %d comes after %d", migrations[i].Version, migrations[i-1].Version)
			}
		}

		for _, m := range migrations {
			if m.Up == "" {
				t.Errorf("migration version %d missing up SQL", m.Version)
			}
			if m.Down == "" {
				t.Errorf("migration version %d missing down SQL", m.Version)
			}
		}
	})

	t.Run("RunMigrations And Rollback", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		for _, table := range []string{"artists", "albums", "users", "songs", "playlists", "favorites"} {
			if _, err := db.Exec("SELECT 1 FROM " + table + " LIMIT 1"); err != nil {
				t.Errorf("%s table should exist after migrations: %v", table, err)
			}
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback migration: %v", err)
		}

		if _, err := db.Exec("SELECT 1 FROM songs LIMIT 1"); err == nil {
			t.Error("songs table should be gone after rollback")
		}
	})

	t.Run("Idempotent Migrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations first time: %v", err)
		}

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations second time: %v", err)
		}

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
		if err != nil {
			t.Fatalf("failed to query schema_migrations: %v", err)
		}

		migrations, _ := loadMigrations()
		if count != len(migrations) {
			t.Errorf("expected %d migrations to be applied, got %d", len(migrations), count)
		}
	})

	t.Run("Idempotent Rollback", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		// Rolling back an empty schema is a no-op, not an error.
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("rollback on empty schema should not error: %v", err)
		}

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback migration: %v", err)
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("second rollback should not error: %v", err)
		}
	})

	t.Run("Comments With Semicolons", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := createMigrationsTable(db); err != nil {
			t.Fatalf("failed to create migrations table: %v", err)
		}

		// A ";" inside a comment must not sever the statement that follows.
		migration := Migration{
			Version: 99,
			Up: `-- scratch table; used only by this test
CREATE TABLE IF NOT EXISTS scratch (id INTEGER PRIMARY KEY);`,
			Down: `-- tear down; reverse of the above
DROP TABLE IF EXISTS scratch;`,
		}

		if err := applyMigration(db, migration); err != nil {
			t.Fatalf("failed to apply migration with semicolon in comment: %v", err)
		}

		if _, err := db.Exec("SELECT 1 FROM scratch LIMIT 1"); err != nil {
			t.Errorf("scratch table should exist: %v", err)
		}

		if err := rollbackMigration(db, migration); err != nil {
			t.Fatalf("failed to rollback migration with semicolon in comment: %v", err)
		}

		if _, err := db.Exec("SELECT 1 FROM scratch LIMIT 1"); err == nil {
			t.Error("scratch table should be gone after rollback")
		}
	})

	t.Run("Foreign Keys Enabled", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		var enabled int
		if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
			t.Fatalf("failed to query foreign_keys pragma: %v", err)
		}
		if enabled != 1 {
			t.Error("expected foreign key enforcement to be enabled")
		}
	})
}
