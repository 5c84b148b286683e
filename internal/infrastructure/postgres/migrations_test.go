package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embebidas(t *testing.T) {
	all, err := loadMigrations(migrationsFS)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "0001_create_products", all[0].Version)
	assert.Equal(t, "0002_create_sales", all[1].Version)
	assert.Equal(t, "0003_add_discount_to_sales", all[2].Version)
	assert.Contains(t, all[0].SQL, "products_company_sku_key")
	assert.Contains(t, all[0].SQL, "products_company_product_code_key")
	assert.Contains(t, all[2].SQL, "discount_percent")
}

func TestLoadMigrations_OrdenPorNombre(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_b.sql": {Data: []byte("SELECT 2;")},
		"migrations/0001_a.sql": {Data: []byte("SELECT 1;")},
		"migrations/README.md":  {Data: []byte("no es sql")},
	}
	all, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "0001_a", all[0].Version)
	assert.Equal(t, "SELECT 2;", all[1].SQL)
}

func TestPendingMigrations(t *testing.T) {
	all := []migration{{Version: "0001"}, {Version: "0002"}, {Version: "0003"}}

	assert.Len(t, pendingMigrations(all, nil), 3)

	pending := pendingMigrations(all, map[string]bool{"0001": true, "0003": true})
	require.Len(t, pending, 1)
	assert.Equal(t, "0002", pending[0].Version)

	assert.Empty(t, pendingMigrations(all, map[string]bool{"0001": true, "0002": true, "0003": true}))
}
