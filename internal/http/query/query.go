package query

import "strings"

// QueryString holds the key/value pairs of a request target's "?..." suffix.
// Keys are matched exactly; repeated keys keep their values in order.
type QueryString struct {
	keys []string
	data map[string][]string
}

// Parse splits s on '&' and each pair at its first '='. A pair without '='
// is stored with an empty value. Empty pairs are skipped.
func Parse(s string) *QueryString {
	qs := &QueryString{data: make(map[string][]string)}
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		key, val, _ := strings.Cut(pair, "=")
		qs.add(key, val)
	}
	return qs
}

func (qs *QueryString) add(key, val string) {
	if _, ok := qs.data[key]; !ok {
		qs.keys = append(qs.keys, key)
	}
	qs.data[key] = append(qs.data[key], val)
}

// Get returns every value stored under key.
func (qs *QueryString) Get(key string) ([]string, bool) {
	if qs == nil {
		return nil, false
	}
	v, ok := qs.data[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// First returns the first value stored under key, or "" when absent.
func (qs *QueryString) First(key string) string {
	v, ok := qs.Get(key)
	if !ok {
		return ""
	}
	return v[0]
}

func (qs *QueryString) IsMultiple(key string) bool {
	v, _ := qs.Get(key)
	return len(v) > 1
}

func (qs *QueryString) Keys() []string {
	if qs == nil {
		return nil
	}
	return append([]string(nil), qs.keys...)
}

func (qs *QueryString) Len() int {
	if qs == nil {
		return 0
	}
	return len(qs.keys)
}
