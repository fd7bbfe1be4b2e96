package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
)

// Runs only against a real database: POSTGRES_TEST_DSN=postgres://... go test ./internal/postgres
func TestSeedCatalog_RoundTrip(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, SeedCatalog(ctx, db, catalog.Static()))
	require.NoError(t, SeedCatalog(ctx, db, catalog.Static()), "seeding twice is an upsert")

	cat, err := catalog.Load(ctx, &catalog.PGSource{DB: db})
	require.NoError(t, err)
	assert.Equal(t, catalog.Static(), cat.All())
}

func TestConnect_BadDSN(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://%zz")
	assert.Error(t, err)
}
