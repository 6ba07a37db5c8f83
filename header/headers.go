package header

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

// Headers is an immutable, case-insensitive collection of HTTP message headers.
//
// The zero value is the empty collection. Every method that "changes" the
// collection returns a new independent Headers value; the receiver is never
// mutated, so values can be shared freely between goroutines without locking.
type Headers struct {
	fields map[string]string
}

// FromMap creates a Headers collection from a raw name to value mapping.
// Keys are normalized to lower case; when two keys normalize to the same
// name, one of the colliding values wins. The construction is total and
// never fails.
func FromMap(fields map[string]string) Headers {
	if len(fields) == 0 {
		return Headers{}
	}
	normalized := make(map[string]string, len(fields))
	for k, v := range fields {
		normalized[Name(k).key()] = v
	}
	return Headers{fields: normalized}
}

// Get returns the raw value of the named header.
// The lookup is case-insensitive and has no side effects.
func (h Headers) Get(name Name) (string, bool) {
	v, ok := h.fields[name.key()]
	return v, ok
}

// Has reports whether the named header is present.
func (h Headers) Has(name Name) bool {
	_, ok := h.fields[name.key()]
	return ok
}

// Len returns the number of header fields in the collection.
func (h Headers) Len() int { return len(h.fields) }

// Names returns the canonical names of all header fields, sorted.
func (h Headers) Names() []Name {
	if len(h.fields) == 0 {
		return nil
	}
	keys := slices.Sorted(maps.Keys(h.fields))
	names := make([]Name, len(keys))
	for i, k := range keys {
		names[i] = CanonicName(k)
	}
	return names
}

// With returns a new collection with the named header set to value,
// overwriting any existing value.
func (h Headers) With(name Name, value string) Headers {
	fields := make(map[string]string, len(h.fields)+1)
	maps.Copy(fields, h.fields)
	fields[name.key()] = value
	return Headers{fields: fields}
}

// WithValues joins values with sep and sets the named header to the result,
// overwriting any existing value. An empty values list is a rejected
// precondition: the receiver is returned unchanged together with an
// [errorutil.ErrInvalidArgument] error.
func (h Headers) WithValues(name Name, sep string, values ...string) (Headers, error) {
	if len(values) == 0 {
		return h, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty value list for header %q", CanonicName(name)))
	}
	return h.With(name, strings.Join(values, sep)), nil
}

// Append returns a new collection where value is joined onto the existing
// value of the named header with sep. When the header is absent, Append
// behaves like [Headers.With].
func (h Headers) Append(name Name, value, sep string) Headers {
	if existing, ok := h.Get(name); ok {
		return h.With(name, existing+sep+value)
	}
	return h.With(name, value)
}

// AppendValues joins values with sep and appends the result to the named
// header. An empty values list returns the receiver unchanged.
func (h Headers) AppendValues(name Name, sep string, values ...string) Headers {
	if len(values) == 0 {
		return h
	}
	return h.Append(name, strings.Join(values, sep), sep)
}

// Without returns a new collection with the named header removed.
func (h Headers) Without(name Name) Headers {
	key := name.key()
	if _, ok := h.fields[key]; !ok {
		return h
	}
	if len(h.fields) == 1 {
		return Headers{}
	}
	fields := make(map[string]string, len(h.fields)-1)
	for k, v := range h.fields {
		if k != key {
			fields[k] = v
		}
	}
	return Headers{fields: fields}
}

// Merge returns the union of both collections.
// On name collision the value from other wins.
func (h Headers) Merge(other Headers) Headers {
	if len(other.fields) == 0 {
		return h
	}
	fields := make(map[string]string, len(h.fields)+len(other.fields))
	maps.Copy(fields, h.fields)
	maps.Copy(fields, other.fields)
	return Headers{fields: fields}
}

// Values splits the raw value of the named header on the literal sep.
// Tokens are trimmed of surrounding whitespace and trailing empty tokens
// are dropped. An absent header yields a nil slice.
func (h Headers) Values(name Name, sep string) []string {
	raw, ok := h.Get(name)
	if !ok {
		return nil
	}
	parts := strings.Split(raw, sep)
	for i := range parts {
		parts[i] = util.TrimSP(parts[i])
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Clone returns an independent copy of the collection.
func (h Headers) Clone() Headers {
	return Headers{fields: maps.Clone(h.fields)}
}

// Equal compares this collection with another for equality.
func (h Headers) Equal(val any) bool {
	var other Headers
	switch v := val.(type) {
	case Headers:
		other = v
	case *Headers:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return maps.Equal(h.fields, other.fields)
}

// RenderTo writes the collection to the provided writer as CRLF-terminated
// "Name: value" lines with canonical names in sorted order.
func (h Headers) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, name := range h.Names() {
		v, _ := h.Get(name)
		cw.Fprint(name, ": ", v, "\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the collection.
func (h Headers) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	h.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (h Headers) String() string { return h.Render() }

// Format implements fmt.Formatter for custom formatting of the collection.
func (h Headers) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, h.String())
			return
		}

		type hideMethods Headers
		type Headers hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Headers(h))
		return
	}
}

// MarshalJSON encodes the collection as a flat JSON object of lower-cased
// name to string value pairs.
func (h Headers) MarshalJSON() ([]byte, error) {
	if len(h.fields) == 0 {
		return []byte("{}"), nil
	}
	return errtrace.Wrap2(json.Marshal(h.fields))
}

// UnmarshalJSON decodes a flat JSON object into the collection. Attributes
// whose value is not a JSON string are silently skipped; they never cause
// a failure.
func (h *Headers) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		*h = Headers{}
		return errtrace.Wrap(err)
	}

	var fields map[string]string
	for k, v := range doc {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if fields == nil {
			fields = make(map[string]string, len(doc))
		}
		fields[Name(k).key()] = s
	}
	*h = Headers{fields: fields}
	return nil
}
