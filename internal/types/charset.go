package types

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/util"
)

const (
	CharsetUTF8        Charset = "utf-8"
	CharsetUTF16       Charset = "utf-16"
	CharsetUTF16BE     Charset = "utf-16be"
	CharsetUTF16LE     Charset = "utf-16le"
	CharsetUSASCII     Charset = "us-ascii"
	CharsetISO88591    Charset = "iso-8859-1"
	CharsetISO88592    Charset = "iso-8859-2"
	CharsetISO88595    Charset = "iso-8859-5"
	CharsetISO885915   Charset = "iso-8859-15"
	CharsetWindows1250 Charset = "windows-1250"
	CharsetWindows1251 Charset = "windows-1251"
	CharsetWindows1252 Charset = "windows-1252"
	CharsetKOI8R       Charset = "koi8-r"
	CharsetShiftJIS    Charset = "shift_jis"
	CharsetEUCJP       Charset = "euc-jp"
	CharsetEUCKR       Charset = "euc-kr"
	CharsetGBK         Charset = "gbk"
	CharsetGB18030     Charset = "gb18030"
	CharsetBig5        Charset = "big5"
)

// ErrUnknownCharset is returned when a string does not name a recognized charset.
const ErrUnknownCharset errorutil.Error = "unknown charset"

var charsets = map[Charset]struct{}{
	CharsetUTF8:        {},
	CharsetUTF16:       {},
	CharsetUTF16BE:     {},
	CharsetUTF16LE:     {},
	CharsetUSASCII:     {},
	CharsetISO88591:    {},
	CharsetISO88592:    {},
	CharsetISO88595:    {},
	CharsetISO885915:   {},
	CharsetWindows1250: {},
	CharsetWindows1251: {},
	CharsetWindows1252: {},
	CharsetKOI8R:       {},
	CharsetShiftJIS:    {},
	CharsetEUCJP:       {},
	CharsetEUCKR:       {},
	CharsetGBK:         {},
	CharsetGB18030:     {},
	CharsetBig5:        {},
}

// Charset represents an IANA character set name in its lower-case form.
type Charset string

// ParseCharset parses a charset name from the given input s (string or []byte).
// The match is case-insensitive; anything outside the recognized set is an error.
func ParseCharset[T ~string | ~[]byte](s T) (Charset, error) {
	cs := Charset(util.LCase(util.TrimSP(string(s))))
	if _, ok := charsets[cs]; !ok {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownCharset, "%q", string(s)))
	}
	return cs, nil
}

func (cs Charset) String() string { return string(cs) }

func (cs Charset) IsValid() bool {
	_, ok := charsets[util.LCase(cs)]
	return ok
}

func (cs Charset) Equal(val any) bool {
	var other Charset
	switch v := val.(type) {
	case Charset:
		other = v
	case *Charset:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(cs, other)
}
