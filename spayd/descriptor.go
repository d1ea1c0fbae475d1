package spayd

import (
	"fmt"
	"sort"

	"qrpay.cz/spayd/cidutil"
)

// Version identifies a revision of the SPAYD format. It is immutable once
// constructed; ordering is lexicographic on (Major, Minor).
type Version struct {
	Major uint32
	Minor uint32
}

// V1_0 is format revision 1.0, the only revision currently specified.
var V1_0 = Version{Major: 1, Minor: 0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0, or 1 ordering v against o.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major < o.Major:
		return -1
	case v.Major > o.Major:
		return 1
	case v.Minor < o.Minor:
		return -1
	case v.Minor > o.Minor:
		return 1
	default:
		return 0
	}
}

// Field is one name/value pair of a descriptor.
type Field struct {
	Name  string
	Value string
}

// Descriptor is the in-memory representation of one payment request: a
// format version plus a unique-key field mapping. Field iteration is always
// in ascending name order; that ordering is the basis of the canonical form,
// not an incidental detail.
//
// A Descriptor is a plain mutable value with no internal locking. Callers
// sharing one across goroutines must synchronize externally.
type Descriptor struct {
	version Version
	fields  map[string]string
}

// New returns a descriptor with the given version and initial fields.
// The fields map is copied; a nil map yields an empty descriptor.
func New(version Version, fields map[string]string) *Descriptor {
	d := &Descriptor{version: version, fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		d.fields[k] = v
	}
	return d
}

// NewV1 returns a version 1.0 descriptor with the given initial fields.
func NewV1(fields map[string]string) *Descriptor {
	return New(V1_0, fields)
}

// Version returns the format revision the descriptor was constructed with.
func (d *Descriptor) Version() Version {
	return d.version
}

// Field returns the raw text of the named field and whether it is present.
func (d *Descriptor) Field(name string) (string, bool) {
	v, ok := d.fields[name]
	return v, ok
}

// SetField inserts or overwrites the named field. Names are case-sensitive
// and unique; setting an existing name replaces its value.
func (d *Descriptor) SetField(name, value string) {
	d.fields[name] = value
}

// Fields returns every field in ascending name order.
func (d *Descriptor) Fields() []Field {
	return d.sortedFields(false)
}

// CanonicalFields returns the fields in ascending name order with the
// reserved CRC32 field excluded. This is the traversal the canonical form
// and the checksum computation are built on.
func (d *Descriptor) CanonicalFields() []Field {
	return d.sortedFields(true)
}

func (d *Descriptor) sortedFields(excludeChecksum bool) []Field {
	names := make([]string, 0, len(d.fields))
	for name := range d.fields {
		if excludeChecksum && name == FieldCRC32 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Field, 0, len(names))
	for _, name := range names {
		out = append(out, Field{Name: name, Value: d.fields[name]})
	}
	return out
}

// Equal reports whether two descriptors have the same version and the same
// field mapping.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.version != o.version || len(d.fields) != len(o.fields) {
		return false
	}
	for k, v := range d.fields {
		if ov, ok := o.fields[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// CID returns a deterministic content identifier for the descriptor: an
// IPFS-compatible CIDv1 (raw + sha2-256) over the display form's bytes.
// Useful as a stable address for dedup or content-addressed storage.
func (d *Descriptor) CID() string {
	return cidutil.CIDv1RawSHA256([]byte(d.String()))
}
