package spayd

import "strings"

// CanonicalString renders the canonical form: header, then every field
// except the reserved CRC32 field, ascending by name, percent-encoded.
// This is the exact byte sequence the CRC32 checksum is computed over;
// two descriptors with equal fields always canonicalize identically
// regardless of insertion order.
func (d *Descriptor) CanonicalString() string {
	return d.render(d.CanonicalFields())
}

// String renders the display form: like CanonicalString but over all stored
// fields, including CRC32 when present. This is the external textual form
// of the descriptor; Parse(d.String()) reproduces d exactly.
func (d *Descriptor) String() string {
	return d.render(d.Fields())
}

func (d *Descriptor) render(fields []Field) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(d.version.String())
	for _, f := range fields {
		sb.WriteByte(fieldSeparator)
		sb.WriteString(escapeText(f.Name))
		sb.WriteByte(valueSeparator)
		sb.WriteString(escapeText(f.Value))
	}
	return sb.String()
}
