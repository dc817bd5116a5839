package http2

// HeaderField is a single decompressed header name/value pair, and the
// unit of storage in both the static and dynamic tables.
type HeaderField struct {
	Name  string
	Value string
}

// Size returns the entry's contribution to a dynamic table's accounted
// size: the length of the name and value in octets plus 32 bytes of
// bookkeeping overhead (RFC 7541 §4.1). The encoder and dynamic table
// both use this to decide what fits and what must be evicted.
func (h HeaderField) Size() uint32 {
	return uint32(len(h.Name) + len(h.Value) + 32)
}

// sensitiveHeaders names the header fields that must never be written
// into a dynamic table or encoded with indexing, regardless of the
// caller's request, because doing so would let a network observer
// correlate a compressed index across requests (RFC 7541 §7.1). Every
// HPACK implementation examined in the retrieval pack that supports
// "never indexed" encoding keys this set on the header name alone.
var sensitiveHeaders = map[string]bool{
	"cookie":              true,
	"set-cookie":          true,
	"proxy-authenticate":  true,
	"www-authenticate":    true,
}

// IsSensitive reports whether name is a header that must be kept out of
// the dynamic table. The Encoder emits such a field as Literal Header
// Field Never Indexed unless it exactly matches a table entry.
func IsSensitive(name string) bool {
	return sensitiveHeaders[name]
}

// HeaderList is an ordered sequence of header fields, the decoded or
// to-be-encoded representation of one HPACK header block. Order matters:
// RFC 7540 requires pseudo-headers first and preserves repeated-header
// order for semantics like multiple Set-Cookie values.
type HeaderList []HeaderField

// Every returns, in order, the values of every field named name.
func (h HeaderList) Every(name string) []string {
	var out []string
	for _, f := range h {
		if f.Name == name {
			out = append(out, f.Value)
		}
	}
	return out
}

// First returns the value of the first field named name.
func (h HeaderList) First(name string) (string, bool) {
	for _, f := range h {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Last returns the value of the last field named name.
func (h HeaderList) Last(name string) (string, bool) {
	value, found := "", false
	for _, f := range h {
		if f.Name == name {
			found = true
			value = f.Value
		}
	}
	return value, found
}

// Replace sets the value of the first field named h.Name to h.Value and
// removes every later field with that name. If no field with that name
// exists, h is appended. This keeps a header's position stable across
// repeated updates instead of moving it to the end, matching how a
// request/response builder rewrites a single logical header in place.
func (h *HeaderList) Replace(field HeaderField) {
	list := *h
	found := false
	out := list[:0]
	for _, f := range list {
		if f.Name == field.Name {
			if found {
				continue
			}
			found = true
			f.Value = field.Value
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, field)
	}
	*h = out
}

// Remove deletes every field named name.
func (h *HeaderList) Remove(name string) {
	list := *h
	out := list[:0]
	for _, f := range list {
		if f.Name != name {
			out = append(out, f)
		}
	}
	*h = out
}
