package reflink

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wantHref *string
		wantText string
	}{
		{
			name:     "archive anchor",
			in:       `<a refstr=LIU_ET_AL__2008 href=https://ui.adsabs.harvard.edu/abs/2008ApJ...672..553L/abstract target=ref>Liu et al. 2008</a>`,
			wantHref: str("https://ui.adsabs.harvard.edu/abs/2008ApJ...672..553L/abstract"),
			wantText: "Liu et al. 2008",
		},
		{
			name:     "quoted attributes",
			in:       `<a href="https://example.org/x">  Doe 2020 </a>`,
			wantHref: str("https://example.org/x"),
			wantText: "Doe 2020",
		},
		{
			name:     "no href",
			in:       `<a target=ref>Anonymous</a>`,
			wantText: "Anonymous",
		},
		{
			name:     "plain text",
			in:       "Calculated Value",
			wantText: "Calculated Value",
		},
		{
			name:     "first anchor wins",
			in:       `<a href=/one>One</a><a href=/two>Two</a>`,
			wantHref: str("/one"),
			wantText: "One",
		},
		{
			name:     "markup without anchor",
			in:       `<b>bold</b>`,
			wantText: `<b>bold</b>`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			href, text := Extract(tc.in)
			if (href == nil) != (tc.wantHref == nil) || (href != nil && *href != *tc.wantHref) {
				t.Fatalf("Extract(%q) href: got=%v want=%v", tc.in, deref(href), deref(tc.wantHref))
			}
			if text != tc.wantText {
				t.Fatalf("Extract(%q) text: got=%q want=%q", tc.in, text, tc.wantText)
			}
		})
	}
}

func str(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
