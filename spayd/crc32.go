package spayd

import (
	"fmt"
	"hash/crc32"
	"strconv"
)

// ChecksumStatus is the non-error outcome of a checksum check. The CRC32
// field is optional, so a check can succeed without any checksum having
// been supplied; inspect the status (or use RequireCRC32) to enforce
// checksum usage.
type ChecksumStatus int

const (
	// ChecksumPassed means a CRC32 value was provided and matched.
	ChecksumPassed ChecksumStatus = iota
	// ChecksumNotProvided means the CRC32 field was absent.
	ChecksumNotProvided
)

func (s ChecksumStatus) String() string {
	switch s {
	case ChecksumPassed:
		return "passed"
	case ChecksumNotProvided:
		return "not provided"
	default:
		return fmt.Sprintf("ChecksumStatus(%d)", int(s))
	}
}

// ComputeCRC32 returns the IEEE CRC-32 of the canonical form's bytes.
// The canonical form excludes the CRC32 field itself, so the checksum
// never covers its own carrier.
func (d *Descriptor) ComputeCRC32() uint32 {
	return crc32.ChecksumIEEE([]byte(d.CanonicalString()))
}

// StampCRC32 computes the descriptor's checksum and writes it into the
// CRC32 field as eight uppercase hex digits. A subsequent CheckCRC32
// always reports ChecksumPassed.
func (d *Descriptor) StampCRC32() {
	d.SetField(FieldCRC32, fmt.Sprintf("%08X", d.ComputeCRC32()))
}

// CheckCRC32 performs an integrity check over the canonical form. It helps
// detect accidental corruption only; it provides no authenticity or other
// cryptographic assurance.
//
// An absent CRC32 field reports ChecksumNotProvided with no error. A present
// field must be a hexadecimal 32-bit value (case-insensitive) matching the
// computed checksum; otherwise a Checksum error with RuleChecksumMalformed
// or RuleChecksumMismatch is returned.
func (d *Descriptor) CheckCRC32() (ChecksumStatus, error) {
	text, ok := d.Field(FieldCRC32)
	if !ok {
		return ChecksumNotProvided, nil
	}
	supplied, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, fragmentError(KindChecksum, RuleChecksumMalformed,
			"CRC32 field is not a 32-bit hex value", text)
	}
	if uint32(supplied) != d.ComputeCRC32() {
		return 0, fragmentError(KindChecksum, RuleChecksumMismatch,
			"data does not match the CRC32 checksum", text)
	}
	return ChecksumPassed, nil
}

// RequireCRC32 is CheckCRC32 with checksum presence enforced: an absent
// CRC32 field fails with RuleChecksumRequired instead of reporting
// ChecksumNotProvided.
func (d *Descriptor) RequireCRC32() (ChecksumStatus, error) {
	status, err := d.CheckCRC32()
	if err != nil {
		return 0, err
	}
	if status == ChecksumNotProvided {
		return 0, newError(KindChecksum, RuleChecksumRequired,
			"CRC32 checksum is required but not provided")
	}
	return status, nil
}
