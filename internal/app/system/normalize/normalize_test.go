package normalize_test

import (
	"testing"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	if got := normalize.Email("  Juergen.Mueller@Example.COM  "); got != "juergen.mueller@example.com" {
		t.Errorf("expected lowercased trimmed email, got %q", got)
	}
}

func TestName(t *testing.T) {
	if got := normalize.Name("  Jürgen Müller  "); got != "Jürgen Müller" {
		t.Errorf("expected case preserved, got %q", got)
	}
}

func TestStatusAndRole(t *testing.T) {
	if got := normalize.Status(" Active "); got != "active" {
		t.Errorf("expected lowercased status, got %q", got)
	}
	if got := normalize.Role(" Admin "); got != "admin" {
		t.Errorf("expected lowercased role, got %q", got)
	}
}

func TestLang(t *testing.T) {
	cases := map[string]string{
		"en":   "en",
		" DE ": "de",
		"fr":   "",
		"":     "",
	}
	for in, want := range cases {
		if got := normalize.Lang(in); got != want {
			t.Errorf("Lang(%q) = %q, want %q", in, got, want)
		}
	}
}
