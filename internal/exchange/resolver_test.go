package exchange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func mustResolver(t *testing.T, entries map[string]string) *Resolver {
	t.Helper()
	tbl, err := NewTable(entries)
	require.NoError(t, err)
	r, err := NewResolver(tbl)
	require.NoError(t, err)
	return r
}

func TestNewResolver_NilTable(t *testing.T) {
	_, err := NewResolver(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

func TestResolve(t *testing.T) {
	r := mustResolver(t, map[string]string{
		"cucumber":     "1 cup = 1 exchange",
		"strawberries": "3 berries = 1 exchange",
		"olives":       "5 olives = 1 exchange",
		"s":            "single letter",
	})

	cases := []struct {
		name     string
		in       *string
		found    bool
		exchange string
		key      string
	}{
		{name: "direct hit", in: ptr("cucumber"), found: true, exchange: "1 cup = 1 exchange", key: "cucumber"},
		{name: "case insensitive", in: ptr("Cucumber"), found: true, exchange: "1 cup = 1 exchange", key: "cucumber"},
		{name: "plural falls back to singular", in: ptr("cucumbers"), found: true, exchange: "1 cup = 1 exchange", key: "cucumber"},
		{name: "singular falls back to plural", in: ptr("olive"), found: true, exchange: "5 olives = 1 exchange", key: "olives"},
		{name: "mixed case plural", in: ptr("CUCUMBERS"), found: true, exchange: "1 cup = 1 exchange", key: "cucumber"},
		{name: "no stemming beyond trailing s", in: ptr("strawberry"), found: false},
		{name: "plural without singular entry", in: ptr("pickles"), found: false},
		{name: "singular without plural entry", in: ptr("pickle"), found: false},
		{name: "only one fallback attempt", in: ptr("cucumberss"), found: false},
		{name: "empty string appends s", in: ptr(""), found: true, exchange: "single letter", key: "s"},
		{name: "absent", in: nil, found: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(tc.in)
			require.Equal(t, tc.found, got.Found)
			require.Equal(t, tc.exchange, got.Exchange)
			require.Equal(t, tc.key, got.Key)
		})
	}
}

func TestResolve_EmptyNameMisses(t *testing.T) {
	r := mustResolver(t, map[string]string{"cucumber": "1 cup = 1 exchange"})
	require.Equal(t, Result{}, r.Resolve(ptr("")))
}

func TestResolve_EveryKeyFindsItself(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	r, err := NewResolver(tbl)
	require.NoError(t, err)

	for k, v := range tbl.Entries() {
		got := r.Resolve(ptr(k))
		require.True(t, got.Found, k)
		require.Equal(t, v, got.Exchange, k)
	}
}

func TestResolve_DirectHitWinsOverFallback(t *testing.T) {
	r := mustResolver(t, map[string]string{
		"greens": "plural entry",
		"green":  "singular entry",
	})
	require.Equal(t, "plural entry", r.Resolve(ptr("greens")).Exchange)
	require.Equal(t, "singular entry", r.Resolve(ptr("green")).Exchange)
}
