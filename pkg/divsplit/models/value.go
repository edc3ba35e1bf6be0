package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Truthy reports whether a cell counts as holding a value for totals-row styling.
// nil, "", numeric zero, false and decimal zero are falsy; everything else is truthy.
func Truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case decimal.Decimal:
		return !x.IsZero()
	case time.Time:
		return true
	default:
		return true
	}
}

// DateTimeLayout is the text layout used for date cells.
const DateTimeLayout = "2006-01-02 15:04:05"

// DisplayText renders a cell as text, e.g. for customer keys.
// Whole floats keep a trailing ".0" so 10.0 and 10 stay distinct.
func DisplayText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	case decimal.Decimal:
		return x.String()
	case time.Time:
		return x.Format(DateTimeLayout)
	default:
		return ""
	}
}

// Numeric returns the decimal value of a numeric cell. Anything else reports false.
func Numeric(v interface{}) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case decimal.Decimal:
		return x, true
	default:
		return decimal.Zero, false
	}
}
