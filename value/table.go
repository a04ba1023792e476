package value

// Table is the TABLE variant: a mapping from normalized key string to
// Value, preserving the most recently inserted original (unnormalized)
// form of each key and the order keys were first inserted.
//
// Grounded on parser/types_dict.go's Dict (map[string]Object with
// Clone), generalized with an explicit order slice so enumeration is
// deterministic the way a CIF table's packet-like row must be.
type Table struct {
	order    []string          // normalized keys, in order of first insertion
	original map[string]string // normalized -> most recent original form
	values   map[string]Value  // normalized -> value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		original: map[string]string{},
		values:   map[string]Value{},
	}
}

// Kind implements Value.
func (t *Table) Kind() Kind { return KindTable }

// Clone implements Value: a deep, independent copy.
func (t *Table) Clone() Value {
	out := NewTable()
	out.order = append([]string(nil), t.order...)
	for k, v := range t.values {
		out.values[k] = v.Clone()
	}
	for k, v := range t.original {
		out.original[k] = v
	}
	return out
}

func (t *Table) String() string {
	s := "{"
	for i, k := range t.order {
		if i > 0 {
			s += " "
		}
		s += "'" + t.original[k] + "':" + t.values[k].String()
	}
	return s + "}"
}

// Set inserts or replaces the value stored under key. If an
// equivalent (under normalization) key already exists, its value is
// replaced and its stored original form is updated to key; otherwise a
// new entry is appended at the end of the enumeration order. The value
// is deep-copied; the table owns the copy.
//
// Set rejects no value kind: LIST, TABLE, NA and Unknown are allowed as
// *values*; only the disallowed-as-key restriction (spec.md §4.2,
// "CIF disallows list, table, N/A, and unknown as table keys") is the
// caller's responsibility to enforce on the key string itself, since
// Go's map keys here are always plain strings.
func (t *Table) Set(key string, v Value) {
	nk := normalizeKey(key)
	if _, ok := t.values[nk]; !ok {
		t.order = append(t.order, nk)
	}
	t.original[nk] = key
	t.values[nk] = v.Clone()
}

// Get returns the value stored under a key equivalent to key, and
// whether it was found. The returned value is a borrowed reference into
// the table.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.values[normalizeKey(key)]
	return v, ok
}

// Delete removes the entry for a key equivalent to key, if present.
func (t *Table) Delete(key string) {
	nk := normalizeKey(key)
	if _, ok := t.values[nk]; !ok {
		return
	}
	delete(t.values, nk)
	delete(t.original, nk)
	for i, k := range t.order {
		if k == nk {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.order) }

// Keys returns the original (unnormalized) form of every key, in
// enumeration order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	for i, k := range t.order {
		out[i] = t.original[k]
	}
	return out
}

func (t *Table) equal(o *Table) bool {
	if t.Len() != o.Len() {
		return false
	}
	for _, k := range t.order {
		ov, ok := o.values[k]
		if !ok || !Equal(t.values[k], ov) {
			return false
		}
	}
	return true
}
