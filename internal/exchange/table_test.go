package exchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTable_NormalizesKeys(t *testing.T) {
	tbl, err := NewTable(map[string]string{"Cucumber": "1 cup = 1 exchange"})
	require.NoError(t, err)

	v, ok := tbl.Lookup("cucumber")
	require.True(t, ok)
	require.Equal(t, "1 cup = 1 exchange", v)

	_, ok = tbl.Lookup("Cucumber")
	require.False(t, ok)
}

func TestNewTable_RejectsDuplicateAfterNormalization(t *testing.T) {
	_, err := NewTable(map[string]string{"egg": "a", "EGG": "b"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestNewTable_RejectsEmptyName(t *testing.T) {
	_, err := NewTable(map[string]string{"": "a"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be empty")
}

func TestNewTable_CopiesInput(t *testing.T) {
	in := map[string]string{"egg": "1 egg"}
	tbl, err := NewTable(in)
	require.NoError(t, err)

	in["bacon"] = "1 slice"
	_, ok := tbl.Lookup("bacon")
	require.False(t, ok)

	out := tbl.Entries()
	out["bacon"] = "1 slice"
	_, ok = tbl.Lookup("bacon")
	require.False(t, ok)
}

func TestLoadJSON(t *testing.T) {
	tbl, err := LoadJSON(strings.NewReader(`{"Olive Oil":"1 tsp = 1 fat exchange"}`))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	v, ok := tbl.Lookup("olive oil")
	require.True(t, ok)
	require.Equal(t, "1 tsp = 1 fat exchange", v)
}

func TestLoadJSON_Malformed(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`["not","an","object"]`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode table")
}

func TestDefault(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	require.NotZero(t, tbl.Len())

	_, ok := tbl.Lookup("mayonnaise")
	require.True(t, ok)
	for k := range tbl.Entries() {
		require.Equal(t, Normalize(k), k)
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "crème fraîche", Normalize("Crème FRAÎCHE"))
	require.Equal(t, "", Normalize(""))
}
