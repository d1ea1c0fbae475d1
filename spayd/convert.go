package spayd

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// dueDateLayout is the SPAYD wire layout for the DT field (YYYYMMDD).
const dueDateLayout = "20060102"

// fieldConverted reads a field and converts its raw text through convert,
// keeping "missing field" and "unparseable value" as distinct errors.
func fieldConverted[T any](d *Descriptor, name string, convert func(string) (T, error)) (T, error) {
	var zero T
	text, ok := d.Field(name)
	if !ok {
		return zero, fragmentError(KindConvert, "SPD-CONV-001", "field is missing", name)
	}
	v, err := convert(text)
	if err != nil {
		return zero, &Error{
			Kind:     KindConvert,
			RuleID:   "SPD-CONV-002",
			Fragment: text,
			Message:  "cannot convert field value",
			Cause:    err,
		}
	}
	return v, nil
}

// Amount returns the AM field as a decimal.
func (d *Descriptor) Amount() (decimal.Decimal, error) {
	return fieldConverted(d, FieldAmount, decimal.NewFromString)
}

// SetAmount writes a decimal into the AM field.
func (d *Descriptor) SetAmount(amount decimal.Decimal) {
	d.SetField(FieldAmount, amount.String())
}

// Currency returns the CC field as an ISO 4217 currency unit.
func (d *Descriptor) Currency() (currency.Unit, error) {
	return fieldConverted(d, FieldCurrency, currency.ParseISO)
}

// SetCurrency writes an ISO 4217 currency code into the CC field.
func (d *Descriptor) SetCurrency(unit currency.Unit) {
	d.SetField(FieldCurrency, unit.String())
}

// DueDate returns the DT field as a calendar date.
func (d *Descriptor) DueDate() (time.Time, error) {
	return fieldConverted(d, FieldDueDate, func(text string) (time.Time, error) {
		return time.Parse(dueDateLayout, text)
	})
}

// SetDueDate writes a calendar date into the DT field.
func (d *Descriptor) SetDueDate(date time.Time) {
	d.SetField(FieldDueDate, date.Format(dueDateLayout))
}

// Message returns the MSG field.
func (d *Descriptor) Message() (string, bool) { return d.Field(FieldMessage) }

// SetMessage writes the MSG field.
func (d *Descriptor) SetMessage(msg string) { d.SetField(FieldMessage, msg) }

// RecipientName returns the RN field.
func (d *Descriptor) RecipientName() (string, bool) { return d.Field(FieldRecipientName) }

// SetRecipientName writes the RN field.
func (d *Descriptor) SetRecipientName(name string) { d.SetField(FieldRecipientName, name) }

// Reference returns the RF field.
func (d *Descriptor) Reference() (string, bool) { return d.Field(FieldReference) }

// SetReference writes the RF field.
func (d *Descriptor) SetReference(ref string) { d.SetField(FieldReference, ref) }

// PaymentType returns the PT field.
func (d *Descriptor) PaymentType() (string, bool) { return d.Field(FieldPaymentType) }

// SetPaymentType writes the PT field.
func (d *Descriptor) SetPaymentType(pt string) { d.SetField(FieldPaymentType, pt) }
