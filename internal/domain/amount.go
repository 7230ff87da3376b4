package domain

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value. It is deliberately its own floating-point type:
// integer and string values never convert to it implicitly.
type Amount float64

// exactDigits covers every fractional digit a float64 can carry.
const exactDigits = 1100

// Valid reports whether the amount can be used to open, credit or debit an account.
// NaN and negative values are invalid; +Inf is a valid float and is accepted.
func (a Amount) Valid() bool {
	return float64(a) >= 0.0
}

// Round rounds the exact binary value to 2 fractional digits, ties to even.
// Non-finite amounts are returned unchanged.
func (a Amount) Round() Amount {
	if !isFinite(a) {
		return a
	}
	return fromDecimal(toDecimal(a).RoundBank(2))
}

// plus returns a+b rounded to 2 digits. Non-finite operands use float64
// arithmetic, and a finite sum too large for float64 becomes ±Inf.
func (a Amount) plus(b Amount) Amount {
	if !isFinite(a) || !isFinite(b) {
		return a + b
	}
	return fromDecimal(toDecimal(a).Add(toDecimal(b)).RoundBank(2))
}

func (a Amount) minus(b Amount) Amount {
	if !isFinite(a) || !isFinite(b) {
		return a - b
	}
	return fromDecimal(toDecimal(a).Sub(toDecimal(b)).RoundBank(2))
}

func (a Amount) String() string {
	if !isFinite(a) {
		return strconv.FormatFloat(float64(a), 'f', -1, 64)
	}
	return toDecimal(a).StringFixedBank(2)
}

// ParseAmount checks the type tag of a dynamically typed value. Only floating-point
// values and float literals are accepted; integers, strings and anything else are
// rejected even when they hold a non-negative number. The sign is not checked here.
func ParseAmount(v any) (Amount, bool) {
	switch n := v.(type) {
	case Amount:
		return n, true
	case float64:
		return Amount(n), true
	case float32:
		return Amount(n), true
	case json.Number:
		return ParseAmountLiteral(n.String())
	default:
		return 0, false
	}
}

// ParseAmountLiteral parses a float literal such as "20.20" or "1e2".
// Integer literals like "123" are rejected.
func ParseAmountLiteral(s string) (Amount, bool) {
	if !strings.ContainsAny(s, ".eE") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return Amount(f), true
}

func isFinite(a Amount) bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// toDecimal converts the exact binary value, not its shortest decimal form.
func toDecimal(a Amount) decimal.Decimal {
	return decimal.NewFromBigRat(new(big.Rat).SetFloat64(float64(a)), exactDigits)
}

func fromDecimal(d decimal.Decimal) Amount {
	return Amount(d.InexactFloat64())
}
