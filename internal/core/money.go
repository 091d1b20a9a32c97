// Package core holds the snackpos domain types and money handling.
//
// Amounts are kept in integer paise so cart totals and report sums stay
// exact; rounding to two decimals happens only when formatting for
// display or encoding to the persisted JSON layout.
package core

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Money is a rupee amount in integer paise.
type Money struct {
	Paise int64
}

// ParsePriceToPaise converts a decimal price string to paise.
//
// It accepts both dot (50.00) and comma (50,00) decimal separators and
// performs half-up rounding on the third decimal place. Zero is a valid
// price; negative values and malformed input are not.
func ParsePriceToPaise(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPrice
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidPrice
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidPrice
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidPrice
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidPrice
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidPrice
	}
	// Take first two fractional digits; half-up rounding on the third
	var fracPaise int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracPaise = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracPaise += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracPaise++
			}
		}
	}
	return iv*100 + fracPaise, nil
}

// Rupees returns the rupee value as a float64 for display purposes.
// Use paise for calculations to avoid floating-point precision issues.
func (m Money) Rupees() float64 {
	return float64(m.Paise) / 100.0
}

// FormatRupees renders paise as a rupee string, e.g. "₹50.00".
func FormatRupees(paise int64) string {
	neg := paise < 0
	if neg {
		paise = -paise
	}
	s := strconv.FormatInt(paise/100, 10) + "." + fmt.Sprintf("%02d", paise%100)
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// MarshalJSON encodes the amount as a plain decimal number so the
// persisted tables keep the documented layout (price: 50.00, not 5000).
func (m Money) MarshalJSON() ([]byte, error) {
	whole := m.Paise / 100
	frac := m.Paise % 100
	if frac < 0 {
		frac = -frac
	}
	if m.Paise < 0 && whole == 0 {
		return []byte(fmt.Sprintf("-0.%02d", frac)), nil
	}
	return []byte(fmt.Sprintf("%d.%02d", whole, frac)), nil
}

// UnmarshalJSON accepts any JSON number, rounding half-up to paise.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("money: %w", err)
	}
	m.Paise = int64(math.Round(v * 100))
	return nil
}
