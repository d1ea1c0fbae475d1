// Package spayd implements parsing, canonicalization, and integrity checking
// for the Short Payment Descriptor (SPAYD) format, a single-line delimited
// text encoding of payment-request data suitable for QR codes and URLs.
//
// A descriptor looks like:
//
//	SPD*1.0*ACC:CZ5855000000001265098001*AM:480.50*CC:CZK*MSG:Payment for the goods
//
// Fields are stored under unique names and always serialize in ascending
// name order. The canonical form (checksum input) excludes the reserved
// CRC32 field; the display form includes every stored field.
package spayd
