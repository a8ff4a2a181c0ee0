package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const feeDecimalPlaces = 2

// SanitizeFee turns a Brazilian formatted amount such as "R$ 1.234,56 (parcela)"
// into a plain decimal string ("1234.56").
func SanitizeFee(value string) (string, error) {
	d, err := ParseFee(value)
	if err != nil {
		return "", err
	}

	return d.StringFixed(feeDecimalPlaces), nil
}

func ParseFee(value string) (decimal.Decimal, error) {
	cleaned, _, _ := strings.Cut(value, "(")
	cleaned = strings.ReplaceAll(cleaned, "R$", "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty value %q", ErrInvalidFee, value)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %w", ErrInvalidFee, value, err)
	}

	// More decimals than centavos means the separators were misread.
	if d.Exponent() < -feeDecimalPlaces {
		return decimal.Decimal{}, fmt.Errorf("%w: ambiguous value %q", ErrInvalidFee, value)
	}

	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative value %q", ErrInvalidFee, value)
	}

	return d, nil
}
