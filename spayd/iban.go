package spayd

import (
	"strings"

	"github.com/jacoelho/banking/iban"
)

// IbanBic is a destination account from the ACC or ALT-ACC fields: an IBAN
// optionally combined with a BIC as "IBAN+BIC".
type IbanBic struct {
	// IBAN is the International Bank Account Number.
	IBAN string
	// BIC is the Bank Identifier Code (ISO 9362); empty when not supplied.
	BIC string
}

// ParseIbanBic splits an account value into its IBAN and optional BIC
// parts. It is purely structural; use Validate for IBAN well-formedness.
func ParseIbanBic(text string) IbanBic {
	ibanPart, bic, _ := strings.Cut(text, "+")
	return IbanBic{IBAN: ibanPart, BIC: bic}
}

func (a IbanBic) String() string {
	if a.BIC != "" {
		return a.IBAN + "+" + a.BIC
	}
	return a.IBAN
}

// Validate checks the IBAN part (country format and mod-97 checksum).
func (a IbanBic) Validate() error {
	if err := iban.Validate(a.IBAN); err != nil {
		return &Error{
			Kind:     KindConvert,
			RuleID:   "SPD-CONV-003",
			Fragment: a.IBAN,
			Message:  "invalid IBAN",
			Cause:    err,
		}
	}
	return nil
}

// Account returns the ACC field split into IBAN and optional BIC.
func (d *Descriptor) Account() (IbanBic, error) {
	return fieldConverted(d, FieldAccount, func(text string) (IbanBic, error) {
		return ParseIbanBic(text), nil
	})
}

// SetAccount writes an account into the ACC field.
func (d *Descriptor) SetAccount(account IbanBic) {
	d.SetField(FieldAccount, account.String())
}

// AlternativeAccounts returns the ALT-ACC field as its comma-separated
// account list.
func (d *Descriptor) AlternativeAccounts() ([]IbanBic, error) {
	return fieldConverted(d, FieldAlternativeAccounts, func(text string) ([]IbanBic, error) {
		parts := strings.Split(text, ",")
		accounts := make([]IbanBic, 0, len(parts))
		for _, p := range parts {
			accounts = append(accounts, ParseIbanBic(p))
		}
		return accounts, nil
	})
}

// SetAlternativeAccounts writes accounts into the ALT-ACC field as a
// comma-separated list.
func (d *Descriptor) SetAlternativeAccounts(accounts []IbanBic) {
	parts := make([]string, 0, len(accounts))
	for _, a := range accounts {
		parts = append(parts, a.String())
	}
	d.SetField(FieldAlternativeAccounts, strings.Join(parts, ","))
}
