package users

import (
	"testing"
	"time"

	"shelter-admin/internal/forms"
)

func TestDecodePatch_RequiresEmailAndRole(t *testing.T) {
	now := time.Now()

	if _, err := decodePatch(forms.Values{"email": "a@b.com"}, now); err == nil {
		t.Fatalf("expected error without role")
	}
	if _, err := decodePatch(forms.Values{"role": "admin"}, now); err == nil {
		t.Fatalf("expected error without email")
	}
}

func TestDecodePatch_SetsUpdatedAtAndNullsOptionals(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)

	row, err := decodePatch(forms.Values{
		"email":      "a@b.com",
		"role":       "volunteer",
		"first_name": "Ana",
		"last_name":  "",
		"phone":      "",
	}, now)
	if err != nil {
		t.Fatalf("decodePatch error: %v", err)
	}

	if row["updated_at"] != "2026-08-30T12:30:00Z" {
		t.Fatalf("expected updated_at stamped with now, got %#v", row["updated_at"])
	}
	if row["first_name"] != "Ana" {
		t.Fatalf("expected first_name passthrough, got %#v", row["first_name"])
	}
	if row["last_name"] != nil || row["phone"] != nil {
		t.Fatalf("empty optionals must be nil, got %#v", row)
	}
	if _, ok := row["id"]; ok {
		t.Fatalf("patch must not carry the id: %#v", row)
	}
}
