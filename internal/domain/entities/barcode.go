package entities

import (
	"errors"
	"strings"
)

// BarCodeFormat identifies the symbology a code belongs to, detected from
// its length after digit-only validation.
type BarCodeFormat string

const (
	BarCodeFormatEAN13   BarCodeFormat = "EAN-13"
	BarCodeFormatEAN8    BarCodeFormat = "EAN-8"
	BarCodeFormatUPCA    BarCodeFormat = "UPC-A"
	BarCodeFormatUnknown BarCodeFormat = "unknown"
)

var (
	ErrBarCodeCompanyID = errors.New("bar code company_id is required")
	ErrBarCodeInvalid   = errors.New("bar code failed check-digit validation")
)

// BarCode links a validated retail code to a product reference.
type BarCode struct {
	Base
	Code        string        `json:"code" dynamodbav:"code"`
	Format      BarCodeFormat `json:"format" dynamodbav:"format"`
	ProductCode string        `json:"product_code,omitempty" dynamodbav:"product_code,omitempty"`
	Description string        `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Audit
}

func (b *BarCode) Validate() error {
	if strings.TrimSpace(b.CompanyID) == "" {
		return ErrBarCodeCompanyID
	}
	if !ValidateBarCode(b.Code) {
		return ErrBarCodeInvalid
	}
	return nil
}

// DetectBarCodeFormat classifies a code by length: 13 digits EAN-13,
// 12 digits UPC-A, 8 digits EAN-8. Anything else is unknown.
func DetectBarCodeFormat(code string) BarCodeFormat {
	if !allDigits(code) {
		return BarCodeFormatUnknown
	}
	switch len(code) {
	case 13:
		return BarCodeFormatEAN13
	case 12:
		return BarCodeFormatUPCA
	case 8:
		return BarCodeFormatEAN8
	}
	return BarCodeFormatUnknown
}

// ValidateBarCode checks the mod-10 weighted checksum for whichever format
// the code's length implies.
func ValidateBarCode(code string) bool {
	switch DetectBarCodeFormat(code) {
	case BarCodeFormatEAN13:
		return ValidateEAN13(code)
	case BarCodeFormatEAN8:
		return ValidateEAN8(code)
	case BarCodeFormatUPCA:
		return ValidateUPCA(code)
	}
	return false
}

// ValidateEAN13 verifies a 13-digit code. Positions 1..12 (left to right)
// are weighted 1,3,1,3,...; the 13th digit is the check digit.
func ValidateEAN13(code string) bool {
	if len(code) != 13 || !allDigits(code) {
		return false
	}
	return int(code[12]-'0') == checkDigit(code[:12], 1)
}

// GenerateEAN13CheckDigit computes the check digit for a 12-digit payload.
// Returns -1 when the payload is not 12 digits.
func GenerateEAN13CheckDigit(payload string) int {
	if len(payload) != 12 || !allDigits(payload) {
		return -1
	}
	return checkDigit(payload, 1)
}

// ValidateEAN8 verifies an 8-digit code. The first 7 digits are weighted
// 3,1,3,1,3,1,3.
func ValidateEAN8(code string) bool {
	if len(code) != 8 || !allDigits(code) {
		return false
	}
	return int(code[7]-'0') == checkDigit(code[:7], 3)
}

// GenerateEAN8CheckDigit computes the check digit for a 7-digit payload.
func GenerateEAN8CheckDigit(payload string) int {
	if len(payload) != 7 || !allDigits(payload) {
		return -1
	}
	return checkDigit(payload, 3)
}

// ValidateUPCA verifies a 12-digit code. The first 11 digits are weighted
// 3,1,3,1,... starting with 3.
func ValidateUPCA(code string) bool {
	if len(code) != 12 || !allDigits(code) {
		return false
	}
	return int(code[11]-'0') == checkDigit(code[:11], 3)
}

// GenerateUPCACheckDigit computes the check digit for an 11-digit payload.
func GenerateUPCACheckDigit(payload string) int {
	if len(payload) != 11 || !allDigits(payload) {
		return -1
	}
	return checkDigit(payload, 3)
}

// checkDigit runs the shared mod-10 weighted sum. firstWeight is the weight
// of the leftmost payload digit; weights alternate with its complement
// (1<->3) toward the right.
func checkDigit(payload string, firstWeight int) int {
	weight := firstWeight
	sum := 0
	for i := 0; i < len(payload); i++ {
		sum += int(payload[i]-'0') * weight
		if weight == 1 {
			weight = 3
		} else {
			weight = 1
		}
	}
	return (10 - sum%10) % 10
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
