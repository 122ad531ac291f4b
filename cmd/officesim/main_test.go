package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/persistence"
)

func TestEnsureDBDir(t *testing.T) {
	root := t.TempDir()

	nested := filepath.Join(root, "a", "b", "office.db")
	require.NoError(t, ensureDBDir(nested))
	info, err := os.Stat(filepath.Dir(nested))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, ensureDBDir("office.db"))

	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	err = ensureDBDir(filepath.Join(blocker, "office.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), blocker)
}

func TestLoadCatalogFallbacks(t *testing.T) {
	db, err := persistence.Open(filepath.Join(t.TempDir(), "office.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cat, err := loadCatalog("", db)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Export(), cat.Export())

	stored := catalog.New(catalog.Default().All()[:2]...)
	doc, err := stored.YAML()
	require.NoError(t, err)
	require.NoError(t, db.SaveCatalog(doc))
	cat, err = loadCatalog("", db)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"), db)
	assert.Error(t, err)
}
