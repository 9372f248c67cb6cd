package speech

import (
	"strconv"
	"strings"
)

// CurrencyFormatter renders a catalog price for spoken output. The two
// deployments disagree on style (plain decimal vs lakh/crore bucketing), so
// the choice is injected at construction rather than hard-coded.
type CurrencyFormatter interface {
	Format(amount float64) string
}

// PlainCurrency renders a symbol-prefixed, thousands-grouped integer amount,
// e.g. "$9,500,000".
type PlainCurrency struct {
	Symbol string
}

func (c PlainCurrency) Format(amount float64) string {
	sym := c.Symbol
	if sym == "" {
		sym = "$"
	}
	return sym + groupThousands(amount)
}

const (
	lakh  = 100_000
	crore = 10_000_000 // amounts at or above this route to the crore bucket
)

// IndianCurrency buckets large amounts into lakh/crore units, the way the
// Bangalore deployment speaks prices: ₹95 lakh, ₹1.2 crore.
type IndianCurrency struct{}

func (IndianCurrency) Format(amount float64) string {
	switch {
	case amount >= crore:
		return "₹" + trimDecimal(amount/crore) + " crore"
	case amount >= lakh:
		return "₹" + trimDecimal(amount/lakh) + " lakh"
	default:
		return "₹" + groupThousands(amount)
	}
}

// trimDecimal keeps at most two decimals and drops trailing zeros, so 95.00
// reads "95" and 1.20 reads "1.2".
func trimDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// groupThousands rounds to a whole amount and inserts comma separators.
func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
