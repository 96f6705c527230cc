package trace

import "strconv"

// Fields are the key/value attributes attached to an event. Values are
// always strings so text and NDJSON output agree.
type Fields map[string]string

// Str sets key to value, allocating the map on first use.
func (f Fields) Str(key, value string) Fields {
	if f == nil {
		f = make(Fields, 2)
	}
	f[key] = value
	return f
}

// Int sets key to the decimal form of n.
func (f Fields) Int(key string, n int) Fields {
	return f.Str(key, strconv.Itoa(n))
}

// Bool sets key to "true" or "false".
func (f Fields) Bool(key string, b bool) Fields {
	return f.Str(key, strconv.FormatBool(b))
}
