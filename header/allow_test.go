package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/header"
)

func TestHeaders_Methods(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdrs header.Headers
		want []header.Method
	}{
		{"absent", header.Headers{}, nil},
		{
			"list",
			header.Headers{}.With("Allow", "GET, POST, PUT"),
			[]header.Method{header.MethodGet, header.MethodPost, header.MethodPut},
		},
		{
			"lower case tokens",
			header.Headers{}.With("Allow", "get,head"),
			[]header.Method{header.MethodGet, header.MethodHead},
		},
		{
			"unknown tokens are dropped",
			header.Headers{}.With("Allow", "GET, BREW, POST"),
			[]header.Method{header.MethodGet, header.MethodPost},
		},
		{
			"nothing parseable",
			header.Headers{}.With("Allow", "BREW"),
			[]header.Method{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := c.hdrs.Methods()
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("hdrs.Methods() mismatch (-want +got):\n%v", diff)
			}
		})
	}
}

func TestHeaders_Allows(t *testing.T) {
	t.Parallel()

	hdrs := header.Headers{}.WithMethods(header.MethodGet, header.MethodPost)

	cases := []struct {
		name   string
		method header.Method
		want   bool
	}{
		{"listed", header.MethodGet, true},
		{"listed second", header.MethodPost, true},
		{"not listed", header.MethodDelete, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := hdrs.Allows(c.method); got != c.want {
				t.Errorf("hdrs.Allows(%q) = %v, want %v", c.method, got, c.want)
			}
		})
	}
}

func TestHeaders_WithMethods(t *testing.T) {
	t.Parallel()

	t.Run("overwrites with joined list", func(t *testing.T) {
		t.Parallel()

		hdrs := header.Headers{}.
			With("Allow", "DELETE").
			WithMethods(header.MethodGet, header.MethodPost)

		if got, _ := hdrs.Get("Allow"); got != "GET,POST" {
			t.Errorf(`hdrs.Get("Allow") = %q, want "GET,POST"`, got)
		}
	})

	t.Run("no methods leaves the collection unchanged", func(t *testing.T) {
		t.Parallel()

		orig := header.Headers{}.With("Allow", "DELETE")
		if got := orig.WithMethods(); !got.Equal(orig) {
			t.Errorf("hdrs.WithMethods() = %q, want %q", got, orig)
		}
	})
}

func TestHeaders_WithMethodAllowed(t *testing.T) {
	t.Parallel()

	hdrs := header.Headers{}.
		WithMethodAllowed(header.MethodGet).
		WithMethodAllowed(header.MethodPost)

	if got, _ := hdrs.Get("Allow"); got != "GET,POST" {
		t.Errorf(`hdrs.Get("Allow") = %q, want "GET,POST"`, got)
	}
	if !hdrs.Allows(header.MethodPost) {
		t.Error("hdrs.Allows(POST) = false, want true")
	}
}
