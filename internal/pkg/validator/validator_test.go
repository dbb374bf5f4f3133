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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-15"); !ok {
		t.Error("IsValidDate(\"2024-01-15\") = false, want true")
	}
	invalid := []string{"2024-13-01", "15-01-2024", "2024-01-15T10:00:00Z", "", "yesterday"}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	invalid := []string{"2024-01-15", "2024-01-15 10:30:00", ""}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"paid", "sick", "unpaid"}
	if !IsInSlice("sick", slice) {
		t.Error("IsInSlice(\"sick\") = false, want true")
	}
	if IsInSlice("vacation", slice) {
		t.Error("IsInSlice(\"vacation\") = true, want false")
	}
	if IsInSlice("paid", []string(nil)) {
		t.Error("IsInSlice on nil slice should be false")
	}

	type kind string
	kinds := []kind{"paid", "sick"}
	if !IsInSlice("paid", kinds) {
		t.Error("IsInSlice should match against string-kinded enum slices")
	}
	if IsInSlice("unpaid", kinds) {
		t.Error("IsInSlice(\"unpaid\") over enum slice = true, want false")
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "password is required"},
	}

	msg := errs.Error()
	if msg != "email: a valid email is required; password: password is required" {
		t.Errorf("unexpected error string: %q", msg)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["email"] == "" || m["password"] == "" {
		t.Errorf("unexpected map: %v", m)
	}
}
