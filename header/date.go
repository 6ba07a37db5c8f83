package header

import (
	"net/http"
	"time"
)

// Date returns the Date header parsed with the fixed RFC 1123 format.
// A missing or malformed header yields no value.
func (h Headers) Date() (time.Time, bool) { return h.timeValue(NameDate) }

// LastModified returns the Last-Modified header parsed with the fixed
// RFC 1123 format. A missing or malformed header yields no value.
func (h Headers) LastModified() (time.Time, bool) { return h.timeValue(NameLastModified) }

func (h Headers) timeValue(name Name) (time.Time, bool) {
	raw, ok := h.Get(name)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(http.TimeFormat, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WithDate returns a new collection with the Date header set to t,
// formatted in UTC with the fixed RFC 1123 format.
func (h Headers) WithDate(t time.Time) Headers {
	return h.With(NameDate, t.UTC().Format(http.TimeFormat))
}

// WithCurrentDate returns a new collection with the Date header set to the
// current time.
func (h Headers) WithCurrentDate() Headers { return h.WithDate(time.Now()) }

// WithLastModified returns a new collection with the Last-Modified header
// set to t, formatted in UTC with the fixed RFC 1123 format.
func (h Headers) WithLastModified(t time.Time) Headers {
	return h.With(NameLastModified, t.UTC().Format(http.TimeFormat))
}
