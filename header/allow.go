package header

import (
	"slices"

	"github.com/ghettovoice/httphead/internal/types"
)

// Methods returns the request methods listed in the Allow header.
// Tokens that do not parse as a known method are dropped.
func (h Headers) Methods() []Method {
	tokens := h.Values(NameAllow, ",")
	if len(tokens) == 0 {
		return nil
	}
	methods := make([]Method, 0, len(tokens))
	for _, tok := range tokens {
		m, err := types.ParseMethod(tok)
		if err != nil {
			continue
		}
		methods = append(methods, m)
	}
	return methods
}

// Allows reports whether the Allow header lists the given method.
func (h Headers) Allows(m Method) bool {
	return slices.ContainsFunc(h.Methods(), func(v Method) bool { return v.Equal(m) })
}

// WithMethods returns a new collection with the Allow header set to the
// comma-joined method list, overwriting any existing value. An empty method
// list returns the receiver unchanged.
func (h Headers) WithMethods(methods ...Method) Headers {
	if len(methods) == 0 {
		return h
	}
	vals := make([]string, len(methods))
	for i, m := range methods {
		vals[i] = m.String()
	}
	h2, _ := h.WithValues(NameAllow, ",", vals...)
	return h2
}

// WithMethodAllowed returns a new collection with the given method appended
// to the Allow header.
func (h Headers) WithMethodAllowed(m Method) Headers {
	return h.Append(NameAllow, m.String(), ",")
}
