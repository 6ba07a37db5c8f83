package header

import "encoding/base64"

// Authorization returns the raw value of the Authorization header.
func (h Headers) Authorization() (string, bool) { return h.Get(NameAuthorization) }

// WithAuthorization returns a new collection with the Authorization header
// set to the given credentials, overwriting any existing value.
func (h Headers) WithAuthorization(credentials string) Headers {
	return h.With(NameAuthorization, credentials)
}

// WithBasicAuthorization returns a new collection with the Authorization
// header set to Basic credentials: the standard, padded base64 encoding of
// "user:password".
func (h Headers) WithBasicAuthorization(user, password string) Headers {
	return h.WithAuthorization("Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password)))
}
