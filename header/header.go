package header

//go:generate go tool errtrace -w .

import (
	"net/textproto"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/types"
	"github.com/ghettovoice/httphead/internal/util"
)

// Method represents an HTTP request method (GET, POST, PUT, etc.).
type Method = types.Method

// Request methods understood by [ParseMethod].
const (
	MethodGet     = types.MethodGet
	MethodHead    = types.MethodHead
	MethodPost    = types.MethodPost
	MethodPut     = types.MethodPut
	MethodDelete  = types.MethodDelete
	MethodConnect = types.MethodConnect
	MethodOptions = types.MethodOptions
	MethodTrace   = types.MethodTrace
	MethodPatch   = types.MethodPatch
)

// ParseMethod parses a request method from the given input s (string or []byte).
func ParseMethod[T ~string | ~[]byte](s T) (Method, error) {
	return errtrace.Wrap2(types.ParseMethod(s))
}

// Charset represents an IANA character set name in its lower-case form.
type Charset = types.Charset

// Charsets recognized by [ParseCharset].
const (
	CharsetUTF8        = types.CharsetUTF8
	CharsetUTF16       = types.CharsetUTF16
	CharsetUTF16BE     = types.CharsetUTF16BE
	CharsetUTF16LE     = types.CharsetUTF16LE
	CharsetUSASCII     = types.CharsetUSASCII
	CharsetISO88591    = types.CharsetISO88591
	CharsetISO88592    = types.CharsetISO88592
	CharsetISO88595    = types.CharsetISO88595
	CharsetISO885915   = types.CharsetISO885915
	CharsetWindows1250 = types.CharsetWindows1250
	CharsetWindows1251 = types.CharsetWindows1251
	CharsetWindows1252 = types.CharsetWindows1252
	CharsetKOI8R       = types.CharsetKOI8R
	CharsetShiftJIS    = types.CharsetShiftJIS
	CharsetEUCJP       = types.CharsetEUCJP
	CharsetEUCKR       = types.CharsetEUCKR
	CharsetGBK         = types.CharsetGBK
	CharsetGB18030     = types.CharsetGB18030
	CharsetBig5        = types.CharsetBig5
)

// ParseCharset parses a charset name from the given input s (string or []byte).
func ParseCharset[T ~string | ~[]byte](s T) (Charset, error) {
	return errtrace.Wrap2(types.ParseCharset(s))
}

// Name represents an HTTP header name.
type Name string

// Canonical names of the headers with typed accessors on [Headers].
const (
	NameAllow            Name = "Allow"
	NameAccept           Name = "Accept"
	NameAcceptCharset    Name = "Accept-Charset"
	NameContentType      Name = "Content-Type"
	NameContentLength    Name = "Content-Length"
	NameDate             Name = "Date"
	NameLastModified     Name = "Last-Modified"
	NameLocation         Name = "Location"
	NameTransferEncoding Name = "Transfer-Encoding"
	NameAuthorization    Name = "Authorization"
)

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

// key returns the normalized form used as the storage key.
func (n Name) key() string { return string(util.LCase(util.TrimSP(n))) }

var hdrNames = map[string]Name{
	"Content-Md5":      "Content-MD5",
	"Etag":             "ETag",
	"Te":               "TE",
	"Www-Authenticate": "WWW-Authenticate",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen
// to upper case; the rest are converted to lowercase. For example, the canonical
// name for "accept-charset" is "Accept-Charset". Well-known names that deviate from
// that rule ("ETag", "WWW-Authenticate") are mapped to their registered form.
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	n := Name(textproto.CanonicalMIMEHeaderKey(string(name)))
	if cn, ok := hdrNames[string(n)]; ok {
		return cn
	}
	return n
}
