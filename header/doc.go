// Package header provides an immutable value-object model for HTTP message
// headers: a case-insensitive [Headers] collection plus typed accessors for
// headers with richer semantics (Allow, Accept, Accept-Charset, Content-Type,
// Content-Length, Date, Last-Modified, Location, Transfer-Encoding,
// Authorization).
//
// # Collection
//
// [Headers] maps lower-cased header names to raw string values. The zero
// value is the empty collection and every "mutator" returns a new collection,
// so values can be shared between goroutines without locking:
//
//	hdrs := header.Headers{}.
//		WithContentType(header.CategoryApplication.Slash("json"), header.CharsetUTF8).
//		WithCurrentDate()
//
// Lookups are case-insensitive; [CanonicName] converts any name to the
// canonical wire form used when rendering.
//
// # Typed accessors
//
// Each typed accessor is a pure read of the collection, and each typed
// writer derives a new collection. Reads degrade silently: a missing or
// malformed value produces no value (or a documented default such as a zero
// content length and the UTF-8 preferred charset) rather than an error, so
// unparseable tokens in list-valued headers are simply dropped. Callers that
// must distinguish absence from malformed values check presence explicitly
// with [Headers.Has] or [Headers.HasContentLength].
//
// # Content types
//
// [ContentType] pairs a [ContentCategory] with a subtype. The seven
// predefined categories are package variables; anything else is a custom
// category rendered with the "X-" prefix. Parsing is total: see
// [ParseContentCategory] for the custom-category round-trip caveat.
//
// # Negotiation
//
// Accept and Accept-Charset expose membership and preference selection.
// Quality weights default to 1 and ties on the maximum weight resolve
// deterministically to the first-listed value:
//
//	hdrs := header.FromMap(map[string]string{
//		"Accept-Charset": "utf-8;q=0.9, iso-8859-1;q=0.9",
//	})
//	cs, _ := hdrs.PreferredCharset() // utf-8
//
// # Document form
//
// [Headers] marshals to a flat JSON object of lower-cased name/value pairs
// and unmarshals from any JSON object, silently skipping attributes whose
// value is not a string.
package header
