// Package types contains common value types used across the library.
package types

//go:generate errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/util"
)

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
)

// ErrUnknownMethod is returned when a string does not name a known request method.
const ErrUnknownMethod errorutil.Error = "unknown request method"

// Method represents an HTTP request method (GET, POST, PUT, etc.).
type Method string

// ParseMethod parses a request method from the given input s (string or []byte).
// The match is case-insensitive; anything outside the known method set is an error.
func ParseMethod[T ~string | ~[]byte](s T) (Method, error) {
	m := Method(util.UCase(util.TrimSP(string(s))))
	if !m.IsValid() {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownMethod, "%q", string(s)))
	}
	return m, nil
}

func (m Method) String() string { return string(m) }

func (m Method) ToUpper() Method { return util.UCase(m) }

func (m Method) ToLower() Method { return util.LCase(m) }

func (m Method) IsValid() bool {
	switch m.ToUpper() {
	case MethodGet, MethodHead, MethodPost, MethodPut, MethodDelete,
		MethodConnect, MethodOptions, MethodTrace, MethodPatch:
		return true
	default:
		return false
	}
}

func (m Method) Equal(val any) bool {
	var other Method
	switch v := val.(type) {
	case Method:
		other = v
	case *Method:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(m, other)
}
