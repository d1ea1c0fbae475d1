package spayd

// ValidateRequired enforces required-field presence for the descriptor's
// format revision. This is separate from Parse so callers can choose
// whether missing fields are treated as hard failures.
//
// Version 1.x requires the ACC field; unknown major versions have no
// required fields here.
func ValidateRequired(d *Descriptor) error {
	if d.version.Major != 1 {
		return nil
	}
	for _, name := range []string{FieldAccount} {
		if _, ok := d.Field(name); !ok {
			return fragmentError(KindValidation, "SPD-VAL-101",
				"required field is missing", name)
		}
	}
	return nil
}
