package utils

import (
	"net/http/httptest"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(10)
	b := GenerateRandomString(10)
	if len(a) != 10 || len(b) != 10 {
		t.Fatalf("wrong length: %q %q", a, b)
	}
	if a == b {
		t.Fatal("two random strings should differ")
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID("e", 12)
	if len(id) != 13 || id[0] != 'e' {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "vendor.name@events.example.org"}
	invalid := []string{"", "not-an-email", "a@b", "a b@c.com"}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("%q should be valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestParseQueryOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/events", nil)
	opts := ParseQueryOptions(r)
	if opts.Page != 1 || opts.Limit != 10 {
		t.Fatalf("defaults wrong: %+v", opts)
	}
}

func TestParseQueryOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/events?page=3&limit=25&status=approved&category=catering", nil)
	opts := ParseQueryOptions(r)
	if opts.Page != 3 || opts.Limit != 25 {
		t.Fatalf("pagination wrong: %+v", opts)
	}
	if opts.Status != "approved" || opts.Category != "catering" {
		t.Fatalf("filters wrong: %+v", opts)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := SanitizeFilename("../../etc/passwd"); got != "etcpasswd" {
		t.Fatalf("traversal not stripped: %q", got)
	}
}
