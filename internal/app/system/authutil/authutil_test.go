package authutil_test

import (
	"strings"
	"testing"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authutil"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := authutil.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("expected hash to differ from plaintext")
	}

	if !authutil.CheckPassword("correct horse battery", hash) {
		t.Error("expected matching password to verify")
	}
	if authutil.CheckPassword("wrong password", hash) {
		t.Error("expected mismatched password to fail")
	}
	if authutil.CheckPassword("correct horse battery", "not-a-hash") {
		t.Error("expected garbage hash to fail")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := authutil.ValidatePassword("short"); err == nil {
		t.Error("expected error for short password")
	}
	if err := authutil.ValidatePassword("long enough password"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}
	if err := authutil.ValidatePassword(strings.Repeat("x", 73)); err == nil {
		t.Error("expected error for password over 72 bytes")
	}
}
