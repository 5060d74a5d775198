package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadTable_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchanges.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Egg":"1 egg = 1 protein exchange"}`), 0o600))

	table, err := readTable(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"egg": "1 egg = 1 protein exchange"}, table.Entries())
}

func TestReadTable_Embedded(t *testing.T) {
	table, err := readTable("")
	require.NoError(t, err)
	require.NotZero(t, table.Len())
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := readTable(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
