package spayd

import (
	"errors"
	"testing"
)

func TestValidateRequiredPresent(t *testing.T) {
	d := NewV1(map[string]string{"ACC": "CZ5855000000001265098001"})
	if err := ValidateRequired(d); err != nil {
		t.Errorf("ValidateRequired: %v", err)
	}
}

func TestValidateRequiredMissingAccount(t *testing.T) {
	d := NewV1(map[string]string{"AM": "100.00"})
	err := ValidateRequired(d)
	if err == nil {
		t.Fatal("expected error for missing ACC")
	}
	if !IsKind(err, KindValidation) {
		t.Errorf("expected Validation kind, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Fragment != FieldAccount {
		t.Errorf("expected error to carry the field name %q, got %+v", FieldAccount, err)
	}
}

func TestValidateRequiredUnknownMajorVersion(t *testing.T) {
	d := New(Version{Major: 2, Minor: 0}, map[string]string{"AM": "100.00"})
	if err := ValidateRequired(d); err != nil {
		t.Errorf("unknown major versions have no required fields here: %v", err)
	}
}

func TestValidationDistinctFromChecksumFailure(t *testing.T) {
	d := NewV1(map[string]string{"AM": "100.00", "CRC32": "00000000"})
	if err := ValidateRequired(d); !IsKind(err, KindValidation) {
		t.Errorf("expected Validation kind, got %v", err)
	}
	if _, err := d.CheckCRC32(); !IsKind(err, KindChecksum) {
		t.Errorf("expected Checksum kind, got %v", err)
	}
}
