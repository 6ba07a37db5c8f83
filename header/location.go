package header

// Location returns the raw value of the Location header.
func (h Headers) Location() (string, bool) { return h.Get(NameLocation) }

// WithLocation returns a new collection with the Location header set to loc,
// overwriting any existing value.
func (h Headers) WithLocation(loc string) Headers { return h.With(NameLocation, loc) }
