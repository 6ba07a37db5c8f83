package header

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/httphead/internal/types"
	"github.com/ghettovoice/httphead/internal/util"
)

// ContentType returns the media type carried by the Content-Type header,
// without its parameters. A missing or malformed header yields no value.
func (h Headers) ContentType() (ContentType, bool) {
	raw, ok := h.Get(NameContentType)
	if !ok {
		return ContentType{}, false
	}
	val, _, _ := strings.Cut(raw, ";")
	mt, err := ParseContentType(util.TrimSP(val))
	if err != nil {
		return ContentType{}, false
	}
	return mt, true
}

// ContentTypeCharset returns the charset carried by the Content-Type header
// after the media type. An unrecognized name is silently dropped.
func (h Headers) ContentTypeCharset() (Charset, bool) {
	raw, ok := h.Get(NameContentType)
	if !ok {
		return "", false
	}
	_, rest, ok := strings.Cut(raw, ";")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(rest, ";")
	cs, err := types.ParseCharset(name)
	if err != nil {
		return "", false
	}
	return cs, true
}

// WithContentType returns a new collection with the Content-Type header set
// to the given media type, overwriting any existing value. When a charset is
// supplied, it is appended after a ";" separator.
func (h Headers) WithContentType(mt ContentType, charset ...Charset) Headers {
	vals := []string{mt.String()}
	if len(charset) > 0 {
		vals = append(vals, charset[0].String())
	}
	h2, _ := h.WithValues(NameContentType, ";", vals...)
	return h2
}

// ContentLength returns the Content-Length header parsed as an integer.
// A missing or unparseable header yields 0; use [Headers.HasContentLength]
// to distinguish absence from an explicit zero.
func (h Headers) ContentLength() int64 {
	raw, ok := h.Get(NameContentLength)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(util.TrimSP(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// HasContentLength reports whether the Content-Length header is present,
// regardless of whether its value parses.
func (h Headers) HasContentLength() bool { return h.Has(NameContentLength) }

// WithContentLength returns a new collection with the Content-Length header
// set to the given size, overwriting any existing value.
func (h Headers) WithContentLength(n int64) Headers {
	return h.With(NameContentLength, strconv.FormatInt(n, 10))
}
