package spayd

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func TestAmount(t *testing.T) {
	d := NewV1(map[string]string{"AM": "480.50"})
	amount, err := d.Amount()
	if err != nil {
		t.Fatalf("Amount: %v", err)
	}
	if !amount.Equal(decimal.RequireFromString("480.50")) {
		t.Errorf("Amount = %s, want 480.50", amount)
	}
}

func TestAmountUnparseable(t *testing.T) {
	d := NewV1(map[string]string{"AM": "lots"})
	_, err := d.Amount()
	if err == nil {
		t.Fatal("expected conversion error")
	}
	if !IsKind(err, KindConvert) || RuleID(err) != "SPD-CONV-002" {
		t.Errorf("expected Convert/SPD-CONV-002, got [%s] %v", RuleID(err), err)
	}
}

func TestAmountMissing(t *testing.T) {
	_, err := NewV1(nil).Amount()
	if err == nil {
		t.Fatal("expected missing-field error")
	}
	if !IsKind(err, KindConvert) || RuleID(err) != "SPD-CONV-001" {
		t.Errorf("expected Convert/SPD-CONV-001, got [%s] %v", RuleID(err), err)
	}
}

func TestSetAmount(t *testing.T) {
	d := NewV1(nil)
	d.SetAmount(decimal.RequireFromString("480.55"))
	if v, _ := d.Field("AM"); v != "480.55" {
		t.Errorf("Field(AM) = %q, want %q", v, "480.55")
	}
}

func TestCurrency(t *testing.T) {
	d := NewV1(map[string]string{"CC": "CZK"})
	unit, err := d.Currency()
	if err != nil {
		t.Fatalf("Currency: %v", err)
	}
	if unit.String() != "CZK" {
		t.Errorf("Currency = %s, want CZK", unit)
	}

	d.SetField("CC", "NOPE")
	if _, err := d.Currency(); !IsKind(err, KindConvert) {
		t.Errorf("expected Convert kind for unknown currency, got %v", err)
	}
}

func TestSetCurrency(t *testing.T) {
	d := NewV1(nil)
	d.SetCurrency(currency.MustParseISO("EUR"))
	if v, _ := d.Field("CC"); v != "EUR" {
		t.Errorf("Field(CC) = %q, want %q", v, "EUR")
	}
}

func TestDueDate(t *testing.T) {
	d := NewV1(map[string]string{"DT": "20121231"})
	date, err := d.DueDate()
	if err != nil {
		t.Fatalf("DueDate: %v", err)
	}
	want := time.Date(2012, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("DueDate = %v, want %v", date, want)
	}
}

func TestDueDateIncorrectFormat(t *testing.T) {
	d := NewV1(map[string]string{"DT": "2012/12/31"})
	_, err := d.DueDate()
	if err == nil {
		t.Fatal("expected conversion error")
	}
	if !IsKind(err, KindConvert) || RuleID(err) != "SPD-CONV-002" {
		t.Errorf("expected Convert/SPD-CONV-002, got [%s] %v", RuleID(err), err)
	}
}

func TestSetDueDate(t *testing.T) {
	d := NewV1(nil)
	d.SetDueDate(time.Date(2012, time.December, 31, 0, 0, 0, 0, time.UTC))
	if v, _ := d.Field("DT"); v != "20121231" {
		t.Errorf("Field(DT) = %q, want %q", v, "20121231")
	}
}

func TestStringAccessors(t *testing.T) {
	d := NewV1(nil)
	d.SetMessage("Payment for the goods")
	d.SetRecipientName("Jan Novák")
	d.SetReference("1234567890")
	d.SetPaymentType("P2P")

	if v, ok := d.Message(); !ok || v != "Payment for the goods" {
		t.Errorf("Message = %q, %v", v, ok)
	}
	if v, ok := d.RecipientName(); !ok || v != "Jan Novák" {
		t.Errorf("RecipientName = %q, %v", v, ok)
	}
	if v, ok := d.Reference(); !ok || v != "1234567890" {
		t.Errorf("Reference = %q, %v", v, ok)
	}
	if v, ok := d.PaymentType(); !ok || v != "P2P" {
		t.Errorf("PaymentType = %q, %v", v, ok)
	}
	if _, ok := NewV1(nil).Message(); ok {
		t.Error("Message should report absence on an empty descriptor")
	}
}
