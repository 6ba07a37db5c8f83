package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/header"
)

func TestHeaders_AcceptedCharsets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdrs header.Headers
		want []header.CharsetWeight
	}{
		{"absent", header.Headers{}, nil},
		{
			"default weight",
			header.Headers{}.With("Accept-Charset", "utf-8"),
			[]header.CharsetWeight{{Charset: header.CharsetUTF8, Weight: 1}},
		},
		{
			"explicit weights",
			header.Headers{}.With("Accept-Charset", "utf-8;q=0.9, iso-8859-1;q=0.5"),
			[]header.CharsetWeight{
				{Charset: header.CharsetUTF8, Weight: 0.9},
				{Charset: header.CharsetISO88591, Weight: 0.5},
			},
		},
		{
			"unparseable weight defaults to 1",
			header.Headers{}.With("Accept-Charset", "utf-8;q=abc, us-ascii;q="),
			[]header.CharsetWeight{
				{Charset: header.CharsetUTF8, Weight: 1},
				{Charset: header.CharsetUSASCII, Weight: 1},
			},
		},
		{
			"unknown charsets are dropped",
			header.Headers{}.With("Accept-Charset", "klingon;q=0.9, utf-16"),
			[]header.CharsetWeight{{Charset: header.CharsetUTF16, Weight: 1}},
		},
		{
			"duplicate keeps first position, last weight wins",
			header.Headers{}.With("Accept-Charset", "utf-8;q=0.3, iso-8859-1;q=0.5, utf-8;q=0.8"),
			[]header.CharsetWeight{
				{Charset: header.CharsetUTF8, Weight: 0.8},
				{Charset: header.CharsetISO88591, Weight: 0.5},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := c.hdrs.AcceptedCharsets()
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("hdrs.AcceptedCharsets() mismatch (-want +got):\n%v", diff)
			}
		})
	}
}

func TestHeaders_PreferredCharset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		hdrs   header.Headers
		want   header.Charset
		wantOK bool
	}{
		{"absent", header.Headers{}, "", false},
		{"nothing recognized", header.Headers{}.With("Accept-Charset", "klingon"), "", false},
		{
			"maximum weight wins",
			header.Headers{}.With("Accept-Charset", "utf-8;q=0.3, iso-8859-1;q=0.9"),
			header.CharsetISO88591, true,
		},
		{
			"tie breaks to the first listed",
			header.Headers{}.With("Accept-Charset", "utf-8;q=0.9, iso-8859-1;q=0.9"),
			header.CharsetUTF8, true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := c.hdrs.PreferredCharset()
			if ok != c.wantOK {
				t.Errorf("hdrs.PreferredCharset() ok = %v, want %v", ok, c.wantOK)
			}
			if got != c.want {
				t.Errorf("hdrs.PreferredCharset() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHeaders_PreferredCharset_deterministic(t *testing.T) {
	t.Parallel()

	hdrs := header.Headers{}.With("Accept-Charset", "utf-8;q=0.9, iso-8859-1;q=0.9")
	for range 100 {
		got, ok := hdrs.PreferredCharset()
		if !ok {
			t.Fatal("hdrs.PreferredCharset() ok = false, want true")
		}
		if got != header.CharsetUTF8 {
			t.Fatalf("hdrs.PreferredCharset() = %q, want %q", got, header.CharsetUTF8)
		}
	}
}

func TestHeaders_PreferredCharsetOrUTF8(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdrs header.Headers
		want header.Charset
	}{
		{"absent defaults to utf-8", header.Headers{}, header.CharsetUTF8},
		{
			"explicit preference",
			header.Headers{}.With("Accept-Charset", "koi8-r"),
			header.CharsetKOI8R,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdrs.PreferredCharsetOrUTF8(); got != c.want {
				t.Errorf("hdrs.PreferredCharsetOrUTF8() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHeaders_AcceptedCharset(t *testing.T) {
	t.Parallel()

	hdrs := header.Headers{}.With("Accept-Charset", "utf-8;q=0.3, iso-8859-1;q=0.9, us-ascii;q=0.9")

	cases := []struct {
		name       string
		candidates []header.Charset
		want       header.Charset
		wantOK     bool
	}{
		{
			"maximum weight among candidates",
			[]header.Charset{header.CharsetUTF8, header.CharsetUSASCII},
			header.CharsetUSASCII, true,
		},
		{
			"tie breaks to the first listed in the header",
			[]header.Charset{header.CharsetUSASCII, header.CharsetISO88591},
			header.CharsetISO88591, true,
		},
		{"no candidate accepted", []header.Charset{header.CharsetBig5}, "", false},
		{"no candidates", nil, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := hdrs.AcceptedCharset(c.candidates...)
			if ok != c.wantOK {
				t.Errorf("hdrs.AcceptedCharset() ok = %v, want %v", ok, c.wantOK)
			}
			if got != c.want {
				t.Errorf("hdrs.AcceptedCharset() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHeaders_WithAcceptedCharsets(t *testing.T) {
	t.Parallel()

	hdrs := header.Headers{}.WithAcceptedCharsets(
		header.CharsetWeight{Charset: header.CharsetUTF8, Weight: 0.9},
		header.CharsetWeight{Charset: header.CharsetISO88591, Weight: 1},
	)

	if got, _ := hdrs.Get("Accept-Charset"); got != "utf-8;q=0.9,iso-8859-1" {
		t.Errorf(`hdrs.Get("Accept-Charset") = %q, want "utf-8;q=0.9,iso-8859-1"`, got)
	}

	got := hdrs.AcceptedCharsets()
	want := []header.CharsetWeight{
		{Charset: header.CharsetUTF8, Weight: 0.9},
		{Charset: header.CharsetISO88591, Weight: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("hdrs.AcceptedCharsets() round trip mismatch (-want +got):\n%v", diff)
	}

	orig := header.Headers{}.With("Accept-Charset", "utf-8")
	if got := orig.WithAcceptedCharsets(); !got.Equal(orig) {
		t.Errorf("hdrs.WithAcceptedCharsets() = %q, want %q", got, orig)
	}
}
