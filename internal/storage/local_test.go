package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveReplacesPreviousVersion(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	rel, err := s.Save([]byte("first"), "Invoice_7.pdf", "invoices")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("invoices", "Invoice_7.pdf"), rel)

	_, err = s.Save([]byte("second"), "Invoice_7.pdf", "invoices")
	require.NoError(t, err)

	data, err := os.ReadFile(s.GetFullPath(rel))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.False(t, s.Exists(rel+".tmp"))
}

func TestLocalStorage_StaysInsideBasePath(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	rel, err := s.Save([]byte("x"), "../../escape.pdf", "../../invoices")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("invoices", "escape.pdf"), rel)
	assert.Equal(t, filepath.Join(base, "invoices", "escape.pdf"), s.GetFullPath("../"+rel))

	_, err = s.Save([]byte("x"), "..", "invoices")
	assert.Error(t, err)
}

func TestLocalStorage_Delete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	rel, err := s.Save([]byte("x"), "Ledger.xlsx", "ledgers")
	require.NoError(t, err)
	require.True(t, s.Exists(rel))

	require.NoError(t, s.Delete(rel))
	assert.False(t, s.Exists(rel))
	assert.Error(t, s.Delete(rel))
}
