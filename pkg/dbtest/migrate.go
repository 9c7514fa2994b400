package dbtest

import (
	"fmt"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
)

const EnvDSN = "TEST_PG_DSN"

// Connect opens the test database named by TEST_PG_DSN and applies the given
// migration files. The test is skipped when the variable is unset.
func Connect(t testing.TB, fileNames ...string) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skip(EnvDSN + " is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Fatalf("sqlx.Connect: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	if err = MigrateFromFile(db, fileNames...); err != nil {
		t.Fatalf("MigrateFromFile: %v", err)
	}

	return db
}

// MigrateFromFile executes the SQL files in order over db.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		query, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(query)); err != nil {
			return fmt.Errorf("db.Exec %s: %w", fileName, err)
		}
	}

	return nil
}
