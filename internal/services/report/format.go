package report

import (
	"fmt"
	"strconv"
	"strings"
)

// notAvailable is the single rendering of every undefined metric.
const notAvailable = "n/a"

// fmtAmount renders a currency amount with thousands separators, "n/a" when nil.
func fmtAmount(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return groupDigits(*v)
}

// fmtPct renders a percentage to one decimal, "n/a" when nil.
func fmtPct(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.1f%%", *v)
}

// fmtSignedAmount renders a delta with an explicit sign, "n/a" when nil.
func fmtSignedAmount(v *float64) string {
	if v == nil {
		return notAvailable
	}
	s := groupDigits(*v)
	if *v >= 0 {
		s = "+" + s
	}
	return s
}

func groupDigits(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
