package errors

import "testing"

func TestDuplicateFieldNamesField(t *testing.T) {
	err := NewDuplicateField("username")
	if !IsAlreadyExists(err) {
		t.Fatal("duplicate field must match ErrAlreadyExists")
	}
	if got := err.Error(); got != "already exists: username already taken" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestWrapInternalPreservesKind(t *testing.T) {
	err := WrapInternal(ErrNotFound, "ctx")
	if !IsInternal(err) {
		t.Fatal("wrapped error must match ErrInternal")
	}
	if IsNotFound(err) {
		t.Fatal("wrapping must not leak the cause's kind")
	}
}

func TestKindsAreDisjoint(t *testing.T) {
	if IsInvalidToken(ErrExpiredToken) || IsExpiredToken(ErrInvalidToken) {
		t.Fatal("expired and invalid token kinds must stay distinct")
	}
	if IsForbidden(ErrNotFound) || IsNotFound(ErrForbidden) {
		t.Fatal("forbidden and not found kinds must stay distinct")
	}
}
