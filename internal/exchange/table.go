// Package exchange holds the food-name to dietary-exchange table and the
// resolver that looks items up in it.
package exchange

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed data/exchanges.json
var defaultData []byte

// Table is an immutable mapping from normalized item name to exchange text.
// It is safe for concurrent reads once constructed.
type Table struct {
	entries map[string]string
}

// NewTable copies entries into a Table, normalizing every key.
func NewTable(entries map[string]string) (*Table, error) {
	t := &Table{entries: make(map[string]string, len(entries))}
	for name, value := range entries {
		key := Normalize(name)
		if key == "" {
			return nil, errors.New("exchange: item name must not be empty")
		}
		if _, dup := t.entries[key]; dup {
			return nil, fmt.Errorf("exchange: duplicate item %q", key)
		}
		t.entries[key] = value
	}
	return t, nil
}

// LoadJSON reads a JSON object of item name to exchange text.
func LoadJSON(r io.Reader) (*Table, error) {
	var entries map[string]string
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("exchange: decode table: %w", err)
	}
	return NewTable(entries)
}

// Default returns the table bundled with the binary.
func Default() (*Table, error) {
	var entries map[string]string
	if err := json.Unmarshal(defaultData, &entries); err != nil {
		return nil, fmt.Errorf("exchange: decode embedded table: %w", err)
	}
	return NewTable(entries)
}

// Lookup returns the exchange text stored under an already-normalized key.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table contents.
func (t *Table) Entries() map[string]string {
	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Normalize lowercases an item name. A Caser keeps state, so one is built per call.
func Normalize(name string) string {
	return cases.Lower(language.English).String(name)
}
