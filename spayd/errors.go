package spayd

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindParse      Kind = "Parse"
	KindEncoding   Kind = "Encoding"
	KindValidation Kind = "Validation"
	KindChecksum   Kind = "Checksum"
	KindConvert    Kind = "Convert"
	KindInternal   Kind = "Internal"
)

// Rule IDs for checksum failures, exported so callers can distinguish the
// three failure modes of CheckCRC32/RequireCRC32 without string matching.
const (
	RuleChecksumMalformed = "SPD-CRC-001"
	RuleChecksumMismatch  = "SPD-CRC-002"
	RuleChecksumRequired  = "SPD-CRC-003"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., SPD-PARSE-010, SPD-CRC-002) that names
// the violated invariant or validation rule.
//
// Fragment, when non-empty, is the offending portion of the input.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind     Kind
	RuleID   string
	Fragment string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Fragment != "" {
		return e.Message + ": " + e.Fragment
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func fragmentError(kind Kind, ruleID, msg, fragment string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Fragment: fragment}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
