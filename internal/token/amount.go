package token

import (
	"errors"
	"math/big"
	"regexp"
	"strings"
)

// MaxDecimals is the largest precision an SPL mint can declare. Used when
// validating an amount before the mint's own precision is known.
const MaxDecimals = 9

// Errors returned by ToBaseUnits.
var (
	ErrInvalidFormat     = errors.New("invalid amount format")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrAmountTooLarge    = errors.New("amount exceeds uint64 range")
)

// amountRe accepts plain decimal amounts: "1", "0.5", "1234.000001".
// No sign, no exponent, no separators.
var amountRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ToBaseUnits converts a user-entered decimal amount into the token's
// integer base units, exactly. The fractional part is right-padded with
// zeros to decimals digits; anything beyond decimals digits is truncated,
// never rounded. Computed with big.Int — no floating point anywhere.
func ToBaseUnits(amountUI string, decimals int) (uint64, error) {
	s := strings.TrimSpace(amountUI)
	if !amountRe.MatchString(s) {
		return 0, ErrInvalidFormat
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}

	// Pad to exactly decimals digits, then truncate the excess.
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else {
		frac = frac[:decimals]
	}

	w, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return 0, ErrInvalidFormat
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	w.Mul(w, scale)

	if frac != "" {
		f, ok := new(big.Int).SetString(frac, 10)
		if !ok {
			return 0, ErrInvalidFormat
		}
		w.Add(w, f)
	}

	if w.Sign() <= 0 {
		return 0, ErrNonPositiveAmount
	}
	if !w.IsUint64() {
		return 0, ErrAmountTooLarge
	}
	return w.Uint64(), nil
}

// FormatBaseUnits renders an integer base-unit amount as a human decimal
// string, trimming trailing fractional zeros ("1500000", 6 → "1.5").
func FormatBaseUnits(v uint64, decimals int) string {
	s := new(big.Int).SetUint64(v).String()
	if decimals == 0 {
		return s
	}
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}
	cut := len(s) - decimals
	whole, frac := s[:cut], s[cut:]
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}
