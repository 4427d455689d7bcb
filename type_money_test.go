package assetprofile

import "testing"

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		m      Money
		places int32
		want   string
	}{
		{M(1234.5, "USD"), 2, "1,234.50 USD"},
		{M(-1234.5, "USD"), 2, "-1,234.50 USD"},
		{M(0.005, "USD"), 2, "0.01 USD"},
		{M(1234567, "USD"), 0, "1,234,567 USD"},
		{M(D("12.5"), "XYZ"), 2, "12.50 XYZ"},
	}
	for _, tc := range testCases {
		if got := tc.m.Format(tc.places); got != tc.want {
			t.Errorf("%v.Format(%d) = %q, want %q", tc.m.Value(), tc.places, got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(1.5, "USD").SignedString(2); got != "+1.50 USD" {
		t.Errorf("SignedString() = %q, want %q", got, "+1.50 USD")
	}
	if got := M(0, "USD").SignedString(2); got != "0.00 USD" {
		t.Errorf("SignedString() = %q, want %q", got, "0.00 USD")
	}
	if got := M(-0.5, "USD").SignedString(2); got != "-0.50 USD" {
		t.Errorf("SignedString() = %q, want %q", got, "-0.50 USD")
	}
}

func TestMoney_Convert(t *testing.T) {
	got := M(D("100"), "USD").Convert(ExchangeRate{From: "USD", To: "JPY", Value: D("151.27")})
	if !got.Value().Equal(D("15127")) {
		t.Errorf("Convert() = %v, want 15127", got.Value())
	}
	if s := got.Format(0); s != "15,127 JPY" {
		t.Errorf("Format(0) = %q, want %q", s, "15,127 JPY")
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, c := range []string{"USD", "EUR", "JPY", "CHF"} {
		if err := ValidateCurrency(c); err != nil {
			t.Errorf("ValidateCurrency(%q) unexpected error: %v", c, err)
		}
	}
	for _, c := range []string{"", "usd", "EURO", "XYZ", "12A"} {
		if err := ValidateCurrency(c); err == nil {
			t.Errorf("ValidateCurrency(%q) = nil, want error", c)
		}
	}
}
