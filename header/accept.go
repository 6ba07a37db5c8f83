package header

import "slices"

// AcceptedTypes returns the content types listed in the Accept header.
// Tokens that do not parse as a content type are dropped.
func (h Headers) AcceptedTypes() []ContentType {
	tokens := h.Values(NameAccept, ",")
	if len(tokens) == 0 {
		return nil
	}
	accepted := make([]ContentType, 0, len(tokens))
	for _, tok := range tokens {
		mt, err := ParseContentType(tok)
		if err != nil {
			continue
		}
		accepted = append(accepted, mt)
	}
	return accepted
}

// Accepts reports whether the Accept header lists the given content type.
func (h Headers) Accepts(mt ContentType) bool {
	return slices.ContainsFunc(h.AcceptedTypes(), func(v ContentType) bool { return v.Equal(mt) })
}

// AcceptedType returns the first candidate, in caller-supplied order,
// listed in the Accept header.
func (h Headers) AcceptedType(candidates ...ContentType) (ContentType, bool) {
	accepted := h.AcceptedTypes()
	for _, mt := range candidates {
		if slices.ContainsFunc(accepted, func(v ContentType) bool { return v.Equal(mt) }) {
			return mt, true
		}
	}
	return ContentType{}, false
}

// WithAcceptedTypes returns a new collection with the Accept header set to
// the comma-joined content type list, overwriting any existing value.
// An empty list returns the receiver unchanged.
func (h Headers) WithAcceptedTypes(mts ...ContentType) Headers {
	if len(mts) == 0 {
		return h
	}
	vals := make([]string, len(mts))
	for i, mt := range mts {
		vals[i] = mt.String()
	}
	h2, _ := h.WithValues(NameAccept, ",", vals...)
	return h2
}
