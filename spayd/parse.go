package spayd

import (
	"strconv"
	"strings"
)

const (
	// header is the literal prefix of every serialized descriptor.
	header = "SPD*"

	fieldSeparator = '*'
	valueSeparator = ':'
)

// Parse parses a serialized SPAYD descriptor.
//
// The input must be entirely ASCII-printable; arbitrary Unicode travels
// inside values only in percent-encoded form. Parsing either consumes the
// whole input and yields a fully-populated descriptor or fails with a
// structured error; there is no partial result. Duplicate field names are
// tolerated with the last occurrence winning.
//
// Parse does not enforce required-field presence or verify the checksum;
// use ValidateRequired and CheckCRC32/RequireCRC32 so callers can choose
// how strict to be.
func Parse(input string) (*Descriptor, error) {
	for i := 0; i < len(input); i++ {
		if b := input[i]; b < 0x20 || b > 0x7E {
			return nil, fragmentError(KindParse, "SPD-PARSE-001",
				"input must be ASCII-printable", input[i:])
		}
	}

	rest, ok := strings.CutPrefix(input, header)
	if !ok {
		return nil, fragmentError(KindParse, "SPD-PARSE-010", "malformed header", input)
	}

	version, rest, err := parseVersion(rest)
	if err != nil {
		return nil, err
	}

	if rest == "" {
		return nil, fragmentError(KindParse, "SPD-PARSE-031",
			"field list must contain at least one field", input)
	}

	d := New(version, nil)
	for _, entry := range strings.Split(rest, string(fieldSeparator)) {
		name, value, err := parseField(entry)
		if err != nil {
			return nil, err
		}
		d.SetField(name, value)
	}
	return d, nil
}

// parseVersion consumes `digits "." digits "*"` and returns the remainder
// after the separator.
func parseVersion(s string) (Version, string, error) {
	major, rest, err := parseVersionNumber(s)
	if err != nil {
		return Version{}, "", err
	}
	rest, ok := strings.CutPrefix(rest, ".")
	if !ok {
		return Version{}, "", fragmentError(KindParse, "SPD-PARSE-020", "malformed version", s)
	}
	minor, rest, err := parseVersionNumber(rest)
	if err != nil {
		return Version{}, "", err
	}
	rest, ok = strings.CutPrefix(rest, string(fieldSeparator))
	if !ok {
		return Version{}, "", fragmentError(KindParse, "SPD-PARSE-030",
			"missing field list after version", rest)
	}
	return Version{Major: major, Minor: minor}, rest, nil
}

func parseVersionNumber(s string) (uint32, string, error) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, "", fragmentError(KindParse, "SPD-PARSE-020", "malformed version", s)
	}
	v, err := strconv.ParseUint(s[:n], 10, 32)
	if err != nil {
		return 0, "", fragmentError(KindParse, "SPD-PARSE-020", "version number out of range", s[:n])
	}
	return uint32(v), s[n:], nil
}

// parseField splits one field-list entry on its first ':' and decodes both
// halves. An empty value is legal; an empty name is not.
func parseField(entry string) (string, string, error) {
	rawName, rawValue, found := strings.Cut(entry, string(valueSeparator))
	if !found {
		return "", "", fragmentError(KindParse, "SPD-PARSE-040",
			"malformed field, expected name:value", entry)
	}
	if rawName == "" {
		return "", "", fragmentError(KindParse, "SPD-PARSE-040",
			"field name must not be empty", entry)
	}
	name, err := unescapeText(rawName)
	if err != nil {
		return "", "", err
	}
	value, err := unescapeText(rawValue)
	if err != nil {
		return "", "", err
	}
	return name, value, nil
}
