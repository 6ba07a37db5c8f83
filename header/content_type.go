package header

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/util"
)

// ErrInvalidContentType is returned when a string cannot be parsed into a [ContentType].
const ErrInvalidContentType errorutil.Error = "invalid content type"

// ContentType pairs a [ContentCategory] with a subtype, e.g. "application/json".
type ContentType struct {
	Category ContentCategory
	Subtype  string
}

// ParseContentType parses a "category/subtype" media type from the given
// input s (string or []byte). Input without a "/" separator is an error.
func ParseContentType[T ~string | ~[]byte](s T) (ContentType, error) {
	cat, sub, ok := strings.Cut(string(s), "/")
	if !ok {
		return ContentType{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentType, "%q", string(s)))
	}
	return ContentType{Category: ParseContentCategory(cat), Subtype: sub}, nil
}

// String returns the wire form "category/subtype".
func (mt ContentType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fmt.Fprint(sb, mt.Category, "/", mt.Subtype)
	return sb.String()
}

// IsZero reports whether the content type is the zero value.
func (mt ContentType) IsZero() bool { return mt.Category.IsZero() && mt.Subtype == "" }

// IsValid reports whether both the category and the subtype are non-empty.
func (mt ContentType) IsValid() bool { return !mt.Category.IsZero() && mt.Subtype != "" }

// Format implements fmt.Formatter for custom formatting of the content type.
func (mt ContentType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods ContentType
		type ContentType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ContentType(mt))
		return
	}
}

// Equal compares this content type with another for equality.
// Subtypes are compared case-insensitively.
func (mt ContentType) Equal(val any) bool {
	var other ContentType
	switch v := val.(type) {
	case ContentType:
		other = v
	case *ContentType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return mt.Category.Equal(other.Category) && util.EqFold(mt.Subtype, other.Subtype)
}

func (mt ContentType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

func (mt *ContentType) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*mt = ContentType{}
		return nil
	}

	parsed, err := ParseContentType(data)
	if err != nil {
		*mt = ContentType{}
		return errtrace.Wrap(err)
	}
	*mt = parsed
	return nil
}
