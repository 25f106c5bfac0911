// Package amount holds logged habit quantities as fixed-point hundredths,
// matching a numeric(10,2) column.
package amount

import (
	"database/sql/driver"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Amount is a quantity in hundredths (2500 == 25.00).
type Amount int64

const (
	Zero Amount = 0

	scale = 100
	// Max is the largest value numeric(10,2) can hold.
	Max Amount = 99_999_999_99
)

// Either side of the point may be empty ("5.", ".5") but not both.
var decimalPattern = regexp.MustCompile(`^\+?(\d*)(?:\.(\d*))?$`)

// Parse reads a decimal quantity. Plain decimals, a bare leading or
// trailing point and exponent notation ("1e3") are accepted. Anything
// else, negatives and values out of range yield Zero instead of an error.
func Parse(raw string) Amount {
	raw = expandExponent(strings.TrimSpace(raw))
	m := decimalPattern.FindStringSubmatch(raw)
	if m == nil || (m[1] == "" && m[2] == "") {
		return Zero
	}

	whole := strings.TrimLeft(m[1], "0")
	if len(whole) > 8 {
		return Zero
	}
	var units int64
	if whole != "" {
		v, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return Zero
		}
		units = v
	}

	frac := m[2]
	var hundredths int64
	if frac != "" {
		padded := (frac + "00")[:2]
		hundredths, _ = strconv.ParseInt(padded, 10, 64)
		// round half up on the third digit
		if len(frac) > 2 && frac[2] >= '5' {
			hundredths++
		}
	}

	total := Amount(units*scale + hundredths)
	if total > Max {
		return Zero
	}
	return total
}

// expandExponent rewrites "2.5e2" as "250" so the decimal path handles it.
// Other input is returned unchanged.
func expandExponent(raw string) string {
	if !strings.ContainsAny(raw, "eE") {
		return raw
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return raw
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FromInt builds an Amount of whole units.
func FromInt(units int64) Amount {
	return Amount(units * scale)
}

// Whole truncates to whole units.
func (a Amount) Whole() int64 {
	return int64(a) / scale
}

func (a Amount) Float64() float64 {
	return float64(a) / scale
}

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/scale, v%scale)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Value stores the amount as a decimal string so numeric columns keep
// exact precision.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Zero
	case int64:
		*a = FromInt(v)
	case float64:
		*a = Amount(math.Round(v * scale))
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	default:
		return fmt.Errorf("amount: cannot scan %T", src)
	}
	return nil
}

func (a *Amount) scanString(s string) error {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	parsed := Parse(strings.TrimPrefix(s, "-"))
	if parsed == Zero && strings.Trim(s, "-0.") != "" {
		return fmt.Errorf("amount: invalid stored value %q", s)
	}
	if neg {
		parsed = -parsed
	}
	*a = parsed
	return nil
}
