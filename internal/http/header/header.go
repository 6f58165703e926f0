package header

import (
	"io"
	"strings"
)

// Value holds the values stored under one header name, in insertion order.
// A Value with a single element is a single-valued entry.
type Value struct {
	values []string
}

func Single(v string) Value {
	return Value{values: []string{v}}
}

func Multiple(v ...string) Value {
	return Value{values: append([]string(nil), v...)}
}

func (v Value) IsMultiple() bool {
	return len(v.values) > 1
}

func (v Value) First() string {
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

func (v Value) All() []string {
	return append([]string(nil), v.values...)
}

func (v Value) Len() int {
	return len(v.values)
}

type entry struct {
	name  string
	value Value
}

// Headers is a case-insensitive multimap. Names keep the casing of their first
// insertion; lookups match any casing. A later Add under a different casing
// appends to the existing entry and its own casing is not kept, so "X-A" then
// "x-a" is written back as two "X-A" lines.
type Headers struct {
	entries []entry
	index   map[string]int
}

func New() *Headers {
	return &Headers{
		index: make(map[string]int, 16),
	}
}

func fold(name string) string {
	return strings.ToLower(name)
}

func (h *Headers) Add(name, value string) {
	if h.index == nil {
		h.index = make(map[string]int, 16)
	}
	key := fold(name)
	if i, ok := h.index[key]; ok {
		h.entries[i].value.values = append(h.entries[i].value.values, value)
		return
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, entry{name: name, value: Single(value)})
}

func (h *Headers) Get(name string) (Value, bool) {
	if h == nil {
		return Value{}, false
	}
	i, ok := h.index[fold(name)]
	if !ok {
		return Value{}, false
	}
	return h.entries[i].value, true
}

// First returns the first value stored under name, or "" when absent.
func (h *Headers) First(name string) string {
	v, _ := h.Get(name)
	return v.First()
}

func (h *Headers) Values(name string) []string {
	v, _ := h.Get(name)
	return v.All()
}

// Clone returns a deep copy. A nil receiver clones to nil.
func (h *Headers) Clone() *Headers {
	if h == nil {
		return nil
	}
	c := &Headers{
		entries: make([]entry, len(h.entries)),
		index:   make(map[string]int, len(h.index)),
	}
	for i, e := range h.entries {
		c.entries[i] = entry{name: e.name, value: Value{values: e.value.All()}}
	}
	for k, i := range h.index {
		c.index[k] = i
	}
	return c
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

func (h *Headers) Names() []string {
	if h == nil {
		return nil
	}
	names := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		names = append(names, e.name)
	}
	return names
}

// Range calls fn once per stored value. Iteration stops when fn returns false.
func (h *Headers) Range(fn func(name, value string) bool) {
	if h == nil {
		return
	}
	for _, e := range h.entries {
		for _, v := range e.value.values {
			if !fn(e.name, v) {
				return
			}
		}
	}
}

// WriteTo writes one "Name: value\r\n" line per stored value.
func (h *Headers) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	h.Range(func(name, value string) bool {
		var n int
		n, err = io.WriteString(w, name+": "+value+"\r\n")
		total += int64(n)
		return err == nil
	})
	return total, err
}

func (h *Headers) String() string {
	var sb strings.Builder
	_, _ = h.WriteTo(&sb)
	return sb.String()
}
