package cashflow

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want Money
	}{
		{"1234.56", M(1234.56)},
		{"1 234,56", M(1234.56)},
		{"1 234,56", M(1234.56)}, // non-breaking space separator
		{"-500", M(-500)},
		{"", M(0)},
		{"garbage", M(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assertMoney(t, "ParseAmount", ParseAmount(tc.in), tc.want)
		})
	}
}

func TestParseNonNegativeAmount(t *testing.T) {
	assertMoney(t, "negative clamps", ParseNonNegativeAmount("-42"), M(0))
	assertMoney(t, "positive passes", ParseNonNegativeAmount("42"), M(42))
}

func TestParseQuantity(t *testing.T) {
	if got := ParseQuantity("12.5"); !got.Equal(Q(12.5)) {
		t.Errorf("ParseQuantity(12.5) = %s", got)
	}
	if got := ParseQuantity("-3"); !got.IsZero() {
		t.Errorf("ParseQuantity(-3) = %s, want 0", got)
	}
	if got := ParseQuantity("x"); !got.IsZero() {
		t.Errorf("ParseQuantity(x) = %s, want 0", got)
	}
}

func TestParseChildren(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"2.9", 2}, // floored
		{"-1", 0},
		{"junk", 0},
	}
	for _, tc := range testCases {
		if got := ParseChildren(tc.in); got != tc.want {
			t.Errorf("ParseChildren(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
