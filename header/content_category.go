package header

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghettovoice/httphead/internal/util"
)

// Predefined top-level media categories.
var (
	CategoryApplication = ContentCategory{name: "application"}
	CategoryAudio       = ContentCategory{name: "audio"}
	CategoryImage       = ContentCategory{name: "image"}
	CategoryMessage     = ContentCategory{name: "message"}
	CategoryMultipart   = ContentCategory{name: "multipart"}
	CategoryText        = ContentCategory{name: "text"}
	CategoryVideo       = ContentCategory{name: "video"}
)

var predefCategories = [...]ContentCategory{
	CategoryApplication,
	CategoryAudio,
	CategoryImage,
	CategoryMessage,
	CategoryMultipart,
	CategoryText,
	CategoryVideo,
}

const customCategoryPrefix = "X-"

// ContentCategory represents the top-level category of a media type:
// one of the predefined categories or a custom category rendered with
// the "X-" prefix.
type ContentCategory struct {
	name   string
	custom bool
}

// CustomCategory creates a custom category with the given name.
// The name is rendered with the "X-" prefix.
func CustomCategory(name string) ContentCategory {
	return ContentCategory{name: name, custom: true}
}

// ParseContentCategory parses a content category from the given input s
// (string or []byte). The function is total: an "X-" prefix always yields a
// custom category with the prefix stripped, even when the remainder matches
// a predefined name; otherwise the input is matched case-insensitively
// against the predefined categories and anything unknown becomes a custom
// category carrying the whole input.
//
// Note the asymmetry: an unprefixed unknown input parses to a custom
// category whose String re-adds the "X-" prefix, so such inputs do not
// round-trip verbatim.
func ParseContentCategory[T ~string | ~[]byte](s T) ContentCategory {
	str := string(s)
	if strings.HasPrefix(str, customCategoryPrefix) {
		return CustomCategory(str[len(customCategoryPrefix):])
	}
	for _, c := range predefCategories {
		if util.EqFold(str, c.name) {
			return c
		}
	}
	return CustomCategory(str)
}

// String returns the wire form of the category: the lower-case name for a
// predefined category, the "X-"-prefixed name for a custom one.
func (c ContentCategory) String() string {
	if c.custom {
		return customCategoryPrefix + c.name
	}
	return c.name
}

// IsCustom reports whether the category is a custom one.
func (c ContentCategory) IsCustom() bool { return c.custom }

// IsZero reports whether the category is the zero value.
func (c ContentCategory) IsZero() bool { return c.name == "" && !c.custom }

// Slash pairs the category with a subtype into a [ContentType].
func (c ContentCategory) Slash(subtype string) ContentType {
	return ContentType{Category: c, Subtype: subtype}
}

// Format implements fmt.Formatter for custom formatting of the category.
func (c ContentCategory) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, c.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, c.String())
			return
		}

		type hideMethods ContentCategory
		type ContentCategory hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ContentCategory(c))
		return
	}
}

// Equal compares this category with another for equality.
// Custom category names are compared case-insensitively.
func (c ContentCategory) Equal(val any) bool {
	var other ContentCategory
	switch v := val.(type) {
	case ContentCategory:
		other = v
	case *ContentCategory:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return c.custom == other.custom && util.EqFold(c.name, other.name)
}

func (c ContentCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ContentCategory) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*c = ContentCategory{}
		return nil
	}
	*c = ParseContentCategory(data)
	return nil
}
