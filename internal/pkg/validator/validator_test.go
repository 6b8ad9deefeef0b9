package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"august", "August", " january ", "DECEMBER"}
	invalid := []string{"", "aug", "month", "13"}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestNormalizeMonth(t *testing.T) {
	if got := NormalizeMonth(" August "); got != "august" {
		t.Errorf("NormalizeMonth(\" August \") = %q, want %q", got, "august")
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-08-01"); !ok {
		t.Error("IsValidDate(2025-08-01) = false, want true")
	}
	if _, ok := IsValidDate("01/08/2025"); ok {
		t.Error("IsValidDate(01/08/2025) = true, want false")
	}
}
