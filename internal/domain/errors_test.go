package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"name": "is required",
		"id":   "must not be negative",
	}}

	want := "validation error: id: must not be negative; name: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	var err error = &ValidationError{Fields: map[string]string{"name": "is required"}}
	wrapped := fmt.Errorf("adding house: %w", err)

	if !errors.Is(wrapped, ErrValidation) {
		t.Errorf("errors.Is(wrapped, ErrValidation) = false, want true")
	}

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatalf("errors.As(wrapped, *ValidationError) = false")
	}
	if verr.Fields["name"] != "is required" {
		t.Errorf("Fields[name] = %q, want %q", verr.Fields["name"], "is required")
	}
}

func TestHouseNotFoundError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("changing ruler: %w", &HouseNotFoundError{HouseID: 1000})

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false, want true")
	}

	var nf *HouseNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("errors.As(err, *HouseNotFoundError) = false")
	}
	if nf.HouseID != 1000 {
		t.Errorf("HouseID = %d, want 1000", nf.HouseID)
	}
	if got, want := nf.Error(), "house 1000: not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
