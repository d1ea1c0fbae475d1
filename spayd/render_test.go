package spayd

import "testing"

func TestCanonicalStringExcludesChecksumAndSorts(t *testing.T) {
	d := NewV1(map[string]string{
		"CC":    "CZK",
		"MSG":   "Payment for the goods",
		"AM":    "480.50",
		"ACC":   "CZ5855000000001265098001",
		"CRC32": "JUNKDATA",
	})
	const want = "SPD*1.0*ACC:CZ5855000000001265098001*AM:480.50*CC:CZK*MSG:Payment for the goods"
	if got := d.CanonicalString(); got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}

func TestStringIncludesChecksumField(t *testing.T) {
	d := NewV1(map[string]string{
		"ACC":   "CZ5855000000001265098001",
		"AM":    "100.00",
		"CC":    "CZK",
		"CRC32": "AAD80227",
	})
	const want = "SPD*1.0*ACC:CZ5855000000001265098001*AM:100.00*CC:CZK*CRC32:AAD80227"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCanonicalStringDeterministic(t *testing.T) {
	a := NewV1(nil)
	a.SetField("CC", "CZK")
	a.SetField("ACC", "CZ5855000000001265098001")
	a.SetField("AM", "480.50")

	b := NewV1(nil)
	b.SetField("AM", "480.50")
	b.SetField("CC", "CZK")
	b.SetField("ACC", "CZ5855000000001265098001")

	if a.CanonicalString() != b.CanonicalString() {
		t.Errorf("insertion order leaked into canonical form: %q vs %q",
			a.CanonicalString(), b.CanonicalString())
	}
}

func TestStringEscapesReservedCharacters(t *testing.T) {
	d := NewV1(map[string]string{"MSG": "****!"})
	if got := d.String(); got != "SPD*1.0*MSG:%2A%2A%2A%2A!" {
		t.Errorf("String() = %q, want %q", got, "SPD*1.0*MSG:%2A%2A%2A%2A!")
	}

	d = NewV1(map[string]string{"MSG": "PŘÍKLAD"})
	if got := d.String(); got != "SPD*1.0*MSG:P%C5%98%C3%8DKLAD" {
		t.Errorf("String() = %q, want %q", got, "SPD*1.0*MSG:P%C5%98%C3%8DKLAD")
	}

	d = NewV1(map[string]string{"MSG": "a:b"})
	if got := d.String(); got != "SPD*1.0*MSG:a%3Ab" {
		t.Errorf("String() = %q, want %q", got, "SPD*1.0*MSG:a%3Ab")
	}
}

func TestStringEmptyDescriptor(t *testing.T) {
	if got := NewV1(nil).String(); got != "SPD*1.0" {
		t.Errorf("String() = %q, want %q", got, "SPD*1.0")
	}
	if got := New(Version{Major: 1, Minor: 5}, nil).String(); got != "SPD*1.5" {
		t.Errorf("String() = %q, want %q", got, "SPD*1.5")
	}
}
