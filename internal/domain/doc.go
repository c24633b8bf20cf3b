// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/character, domain/house).
// This root package holds sentinel errors, validation types, and the
// reference sentinel shared by every entity.
package domain
