package spayd

// Standard SPAYD field names. The core treats every name as an opaque key;
// these constants exist for callers and the typed accessors in this package.
const (
	// FieldAccount is the main account number for the payment, an IBAN or
	// a combined IBAN and BIC.
	FieldAccount = "ACC"
	// FieldAlternativeAccounts lists accounts that may be used instead of
	// the main account, often to find a destination bank with lower fees.
	FieldAlternativeAccounts = "ALT-ACC"
	// FieldAmount is the payment amount to send.
	FieldAmount = "AM"
	// FieldCurrency is the payment currency.
	FieldCurrency = "CC"
	// FieldReference is a reference number for the payee.
	FieldReference = "RF"
	// FieldRecipientName is the payee's name.
	FieldRecipientName = "RN"
	// FieldDueDate is the date when the payment is due.
	FieldDueDate = "DT"
	// FieldPaymentType is the type of payment.
	FieldPaymentType = "PT"
	// FieldMessage is a message for the payee to help identify the payment.
	FieldMessage = "MSG"
	// FieldCRC32 carries the CRC32 integrity checksum. It is excluded from
	// the canonical form so the checksum never covers itself.
	FieldCRC32 = "CRC32"
)
