package exchange

import (
	"errors"
	"strings"
)

// Result is the outcome of a lookup. Key is the table key that matched.
type Result struct {
	Found    bool
	Exchange string
	Key      string
}

type Resolver struct {
	table *Table
}

func NewResolver(t *Table) (*Resolver, error) {
	if t == nil {
		return nil, errors.New("exchange: table must not be nil")
	}
	return &Resolver{table: t}, nil
}

// Resolve looks up name, retrying once with a trailing "s" stripped (if the name
// ends in "s") or appended (otherwise). A nil name is never found.
func (r *Resolver) Resolve(name *string) Result {
	if name == nil {
		return Result{}
	}
	key := Normalize(*name)
	if v, ok := r.table.Lookup(key); ok {
		return Result{Found: true, Exchange: v, Key: key}
	}

	alt := key + "s"
	if strings.HasSuffix(key, "s") {
		alt = strings.TrimSuffix(key, "s")
	}
	if v, ok := r.table.Lookup(alt); ok {
		return Result{Found: true, Exchange: v, Key: alt}
	}
	return Result{}
}
