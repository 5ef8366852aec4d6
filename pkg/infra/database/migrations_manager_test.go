package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func withRegistry(t *testing.T) {
	t.Helper()
	savedRegistry, savedOrder := migrationsRegistry, migrationsOrder
	migrationsRegistry = make(map[string]Migration)
	migrationsOrder = make([]string, 0)
	t.Cleanup(func() {
		migrationsRegistry, migrationsOrder = savedRegistry, savedOrder
	})
}

func noop(*gorm.DB) error { return nil }

func TestRegisterMigration_RejectsDuplicates(t *testing.T) {
	withRegistry(t)

	RegisterMigration(Migration{ID: "20260101_a", Name: "a", Up: noop})

	assert.Panics(t, func() {
		RegisterMigration(Migration{ID: "20260101_a", Name: "again", Up: noop})
	})
}

func TestPendingIDs_SortedAndFiltered(t *testing.T) {
	withRegistry(t)

	RegisterMigration(Migration{ID: "20260301_c", Up: noop})
	RegisterMigration(Migration{ID: "20260101_a", Up: noop})
	RegisterMigration(Migration{ID: "20260201_b", Up: noop})

	pending := pendingIDs(map[string]struct{}{"20260101_a": {}})

	assert.Equal(t, []string{"20260201_b", "20260301_c"}, pending)
	assert.Equal(t, []string{"20260301_c", "20260101_a", "20260201_b"}, migrationsOrder)
}

func TestConfigDSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: 5432, User: "proctor", Password: "secret", DBName: "exams", SSLMode: "require"}

	assert.Equal(t, "host=db port=5432 user=proctor password=secret dbname=exams sslmode=require", cfg.DSN())
}
