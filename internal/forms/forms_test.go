package forms

import (
	"net/url"
	"testing"
	"time"
)

func TestStringOrNil_EmptyCollapsesToNil(t *testing.T) {
	f := Values{"breed": ""}

	if got := f.StringOrNil("breed"); got != nil {
		t.Fatalf("expected nil for empty optional, got %#v", got)
	}
	if got := f.StringOrNil("missing"); got != nil {
		t.Fatalf("expected nil for absent optional, got %#v", got)
	}

	f["breed"] = "labrador"
	if got := f.StringOrNil("breed"); got != "labrador" {
		t.Fatalf("expected labrador, got %#v", got)
	}
}

func TestFloat_ParsesOrNil(t *testing.T) {
	f := Values{"weight_kg": "3.2"}
	if got := f.Float("weight_kg"); got != 3.2 {
		t.Fatalf("expected 3.2, got %#v", got)
	}

	f["weight_kg"] = ""
	if got := f.Float("weight_kg"); got != nil {
		t.Fatalf("expected nil for empty, got %#v", got)
	}

	if got := f.Float("missing"); got != nil {
		t.Fatalf("expected nil for absent, got %#v", got)
	}
}

func TestFloat_NonNumericPassesRawThrough(t *testing.T) {
	// Un valor ilegible no se vuelve 0: viaja crudo y el store reporta
	// el error de tipo.
	f := Values{"weight_kg": "heavy"}
	if got := f.Float("weight_kg"); got != "heavy" {
		t.Fatalf("expected raw string, got %#v", got)
	}
}

func TestCheckbox_OnlyOnIsTrue(t *testing.T) {
	f := Values{"neutered": "on"}
	if !f.Checkbox("neutered") {
		t.Fatalf("expected true for 'on'")
	}

	f["neutered"] = "true"
	if f.Checkbox("neutered") {
		t.Fatalf("expected false for 'true'")
	}

	if f.Checkbox("missing") {
		t.Fatalf("expected false for absent checkbox, never nil/undefined")
	}
}

func TestDateOr_DefaultsToToday(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

	f := Values{}
	if got := f.DateOr("arrival_date", now); got != "2026-08-30" {
		t.Fatalf("expected 2026-08-30, got %q", got)
	}

	f["arrival_date"] = "2025-01-02"
	if got := f.DateOr("arrival_date", now); got != "2025-01-02" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestFromPostForm_TakesFirstValue(t *testing.T) {
	pf := url.Values{}
	pf.Add("name", "Rex")
	pf.Add("name", "Otro")
	pf.Add("species", "Dog")

	f := FromPostForm(pf)
	if f.Get("name") != "Rex" {
		t.Fatalf("expected first value Rex, got %q", f.Get("name"))
	}
	if f.Get("species") != "Dog" {
		t.Fatalf("expected Dog, got %q", f.Get("species"))
	}
}

func TestStringOr_Default(t *testing.T) {
	f := Values{}
	if got := f.StringOr("adoption_status", "No"); got != "No" {
		t.Fatalf("expected default No, got %q", got)
	}

	f["adoption_status"] = "Pending"
	if got := f.StringOr("adoption_status", "No"); got != "Pending" {
		t.Fatalf("expected Pending, got %q", got)
	}
}
