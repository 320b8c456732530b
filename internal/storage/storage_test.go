package storage

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelo/caixas-go/internal/domain"
)

func setupTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "financas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	_, found, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("k", []byte("v1")))
	value, found, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), value)

	// Overwrite
	require.NoError(t, s.Set("k", []byte("v2")))
	value, _, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, s.Delete("k"))
	_, found, err = s.Get("k")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is fine
	require.NoError(t, s.Delete("k"))
}

func TestCaixasSnapshot(t *testing.T) {
	s := NewMemory()

	caixas := []domain.Caixa{
		{ID: "c1", Nome: "Principal", Saldo: decimal.NewFromInt(200)},
		{ID: "c2", Nome: "Reserva", Saldo: decimal.NewFromInt(150)},
	}
	require.NoError(t, SaveCaixasSnapshot(s, caixas))

	loaded, err := LoadCaixasSnapshot(s)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Principal", loaded[0].Nome)
	assert.True(t, loaded[0].Saldo.Equal(decimal.NewFromInt(200)))

	id, err := PrincipalID(s)
	require.NoError(t, err)
	assert.Equal(t, "c1", id)
}

func TestCaixasSnapshotMissing(t *testing.T) {
	s := NewMemory()

	loaded, err := LoadCaixasSnapshot(s)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	id, err := PrincipalID(s)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSnapshotWithoutPrincipal(t *testing.T) {
	s := NewMemory()

	require.NoError(t, SaveCaixasSnapshot(s, []domain.Caixa{{ID: "c9", Nome: "Extra"}}))

	id, err := PrincipalID(s)
	require.NoError(t, err)
	assert.Empty(t, id, "principal id should stay unset when no box is named Principal")
}
