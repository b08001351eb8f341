package normalization

import (
	"testing"
	"time"
)

func TestParseFloat(t *testing.T) {
	def := 42.0
	cases := []struct {
		name string
		raw  string
		def  *float64
		want *float64
	}{
		{name: "plain", raw: "3.25", want: ptr(3.25)},
		{name: "padded", raw: "  -1e3 ", want: ptr(-1000)},
		{name: "integer literal", raw: "7", want: ptr(7)},
		{name: "empty", raw: "", want: nil},
		{name: "not a number", raw: "N/A", want: nil},
		{name: "nan rejected", raw: "nan", want: nil},
		{name: "inf rejected", raw: "inf", want: nil},
		{name: "default used", raw: "abc", def: &def, want: &def},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseFloat(tc.raw, tc.def)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("ParseFloat(%q): got=%v want=%v", tc.raw, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("ParseFloat(%q): got=%v want=%v", tc.raw, *got, *tc.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("2015", nil); got == nil || *got != 2015 {
		t.Fatalf("ParseInt(2015): got=%v", got)
	}
	if got := ParseInt(" 3 ", nil); got == nil || *got != 3 {
		t.Fatalf("ParseInt(' 3 '): got=%v", got)
	}
	if got := ParseInt("1.0", nil); got != nil {
		t.Fatalf("ParseInt(1.0): expected nil, got=%v", *got)
	}
	def := 9
	if got := ParseInt("", &def); got != &def {
		t.Fatalf("ParseInt(''): expected default pointer")
	}
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2014-05-14", "", nil)
	if got == nil || !got.Equal(time.Date(2014, 5, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseDate default layout: got=%v", got)
	}

	got = ParseDate("2014-05", MonthLayout, nil)
	if got == nil || !got.Equal(time.Date(2014, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseDate month layout: got=%v", got)
	}

	if got := ParseDate("2014-05", DateLayout, nil); got != nil {
		t.Fatalf("ParseDate mismatch: expected nil, got=%v", got)
	}
	if got := ParseDate("", DateLayout, nil); got != nil {
		t.Fatalf("ParseDate empty: expected nil, got=%v", got)
	}
}

func TestParseFlag(t *testing.T) {
	cases := map[string]bool{
		"1":   true,
		"2":   true,
		"-1":  true,
		"0":   false,
		"":    false,
		"yes": false,
		"1.0": false,
	}
	for raw, want := range cases {
		if got := ParseFlag(raw); got != want {
			t.Fatalf("ParseFlag(%q): got=%v want=%v", raw, got, want)
		}
	}
}

func TestParseBool(t *testing.T) {
	if v, ok := ParseBool("True"); !ok || !v {
		t.Fatalf("ParseBool(True): v=%v ok=%v", v, ok)
	}
	if v, ok := ParseBool("0"); !ok || v {
		t.Fatalf("ParseBool(0): v=%v ok=%v", v, ok)
	}
	if _, ok := ParseBool("maybe"); ok {
		t.Fatalf("ParseBool(maybe): expected not ok")
	}
}

func TestNullableString(t *testing.T) {
	if got := NullableString("   "); got != nil {
		t.Fatalf("NullableString(blank): expected nil, got=%q", *got)
	}
	if got := NullableString(" [Fe/H] "); got == nil || *got != "[Fe/H]" {
		t.Fatalf("NullableString: got=%v", got)
	}
}

func ptr(v float64) *float64 { return &v }
