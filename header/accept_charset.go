package header

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/httphead/internal/types"
	"github.com/ghettovoice/httphead/internal/util"
)

// CharsetWeight pairs a charset with its quality weight from the
// Accept-Charset header. The default weight is 1 when the header
// carries no explicit weight for the charset.
type CharsetWeight struct {
	Charset Charset
	Weight  float64
}

// AcceptedCharsets returns the charsets listed in the Accept-Charset header
// with their quality weights, in first-occurrence order. Unrecognized
// charset names are dropped. When a charset occurs more than once, it keeps
// its first position and the last weight wins.
func (h Headers) AcceptedCharsets() []CharsetWeight {
	tokens := h.Values(NameAcceptCharset, ",")
	if len(tokens) == 0 {
		return nil
	}

	entries := make([]CharsetWeight, 0, len(tokens))
	index := make(map[Charset]int, len(tokens))
	for _, tok := range tokens {
		name, rest, _ := strings.Cut(tok, ";")
		cs, err := types.ParseCharset(name)
		if err != nil {
			continue
		}
		w := 1.0
		if rest != "" {
			param, _, _ := strings.Cut(rest, ";")
			w = parseWeight(param)
		}
		if i, ok := index[cs]; ok {
			entries[i].Weight = w
			continue
		}
		index[cs] = len(entries)
		entries = append(entries, CharsetWeight{Charset: cs, Weight: w})
	}
	return entries
}

// parseWeight extracts the trailing floating-point weight from a quality
// parameter such as "q=0.9". Absent or unparseable weights default to 1.
func parseWeight(s string) float64 {
	s = util.TrimSP(s)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		i--
	}
	w, err := strconv.ParseFloat(s[i:], 64)
	if err != nil {
		return 1
	}
	return w
}

// PreferredCharset returns the accepted charset with the maximum weight.
// Ties break deterministically to the first-listed charset at the maximum.
func (h Headers) PreferredCharset() (Charset, bool) {
	return preferredCharset(h.AcceptedCharsets())
}

// PreferredCharsetOrUTF8 returns the preferred charset, or UTF-8 when the
// Accept-Charset header is absent or yields no recognized charset.
func (h Headers) PreferredCharsetOrUTF8() Charset {
	if cs, ok := h.PreferredCharset(); ok {
		return cs
	}
	return CharsetUTF8
}

// AcceptedCharset restricts the accepted charsets to the given candidates
// and returns the one with the maximum weight, with the same first-listed
// tie-break as [Headers.PreferredCharset].
func (h Headers) AcceptedCharset(candidates ...Charset) (Charset, bool) {
	entries := h.AcceptedCharsets()
	matched := entries[:0:0]
	for _, e := range entries {
		for _, cand := range candidates {
			if e.Charset.Equal(cand) {
				matched = append(matched, e)
				break
			}
		}
	}
	return preferredCharset(matched)
}

func preferredCharset(entries []CharsetWeight) (Charset, bool) {
	if len(entries) == 0 {
		return "", false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}
	return best.Charset, true
}

// WithAcceptedCharsets returns a new collection with the Accept-Charset
// header set to the comma-joined charset list, overwriting any existing
// value. Weights other than 1 render as a ";q=" parameter. An empty list
// returns the receiver unchanged.
func (h Headers) WithAcceptedCharsets(entries ...CharsetWeight) Headers {
	if len(entries) == 0 {
		return h
	}
	vals := make([]string, len(entries))
	for i, e := range entries {
		v := e.Charset.String()
		if e.Weight != 1 {
			v += ";q=" + strconv.FormatFloat(e.Weight, 'g', -1, 64)
		}
		vals[i] = v
	}
	h2, _ := h.WithValues(NameAcceptCharset, ",", vals...)
	return h2
}
