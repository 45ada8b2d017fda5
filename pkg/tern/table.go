package tern

import "sort"

// Table is a finite map from Term to Term, used both to encode an answer
// substitution (keys are Variable terms) and as the user-facing
// associative literal `{k: v, ...}`. Entries preserve insertion order,
// unlike a Go map, which would make answer presentation (present.go)
// non-deterministic across runs with the same inputs.
type Table struct {
	keys   []Term
	values []Term
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Set inserts or overwrites the value bound to key. An existing key is
// replaced in place (its original position is kept); a new key is
// appended.
func (t *Table) Set(key, value Term) {
	for i, k := range t.keys {
		if Equal(k, key) {
			t.values[i] = value
			return
		}
	}
	t.keys = append(t.keys, key)
	t.values = append(t.values, value)
}

// Get looks up key by structural equality.
func (t *Table) Get(key Term) (Term, bool) {
	for i, k := range t.keys {
		if Equal(k, key) {
			return t.values[i], true
		}
	}
	return nil, false
}

// Len reports the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (t *Table) Range(fn func(key, value Term) bool) {
	for i, k := range t.keys {
		if !fn(k, t.values[i]) {
			return
		}
	}
}

// Clone deep-copies the table.
func (t *Table) Clone() *Table {
	cp := &Table{
		keys:   make([]Term, len(t.keys)),
		values: make([]Term, len(t.values)),
	}
	for i := range t.keys {
		cp.keys[i] = Clone(t.keys[i])
		cp.values[i] = Clone(t.values[i])
	}
	return cp
}

// tableFromSubstitution renders an answer substitution as a Table whose
// keys are the bound Variable terms, in ascending id order, the shape
// Next pushes for each answer.
func tableFromSubstitution(sub *Substitution) *Table {
	var ids []Id
	sub.Entries(func(id Id, _ Term) {
		ids = append(ids, id)
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	tbl := NewTable()
	for _, id := range ids {
		t, _ := sub.Lookup(id)
		tbl.Set(Variable{ID: id}, t)
	}
	return tbl
}
