package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrEmptyInput  = errors.New("empty input")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// NoRelation is the reserved identifier meaning "no such relation". It is
// used for a house without a lord or without an overlord.
const NoRelation int64 = -1

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HouseNotFoundError reports a mutation that targeted a house absent from
// the store. It wraps ErrNotFound.
type HouseNotFoundError struct {
	HouseID int64
}

func (e *HouseNotFoundError) Error() string {
	return fmt.Sprintf("house %d: %s", e.HouseID, ErrNotFound.Error())
}

func (e *HouseNotFoundError) Unwrap() error {
	return ErrNotFound
}
