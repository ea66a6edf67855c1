package currency

import (
	"fmt"
	"math"
)

// FormatINR renders an amount in Indian rupees with the Indian digit
// grouping: the last three digits form a group, every two digits after that,
// e.g. 122124 -> "₹1,22,124".
func FormatINR(amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	formatted := groupIndian(fmt.Sprintf("%.0f", rounded))

	result := "₹" + formatted
	if negative {
		result = "-" + result
	}

	return result
}

func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// One separator before the trailing triple, then one per leading pair.
	head := s[:n-3]
	out := make([]byte, 0, n+1+(len(head)-1)/2)

	lead := len(head) % 2
	if lead == 1 {
		out = append(out, head[0])
		head = head[1:]
		if len(head) > 0 {
			out = append(out, ',')
		}
	}
	for i := 0; i < len(head); i += 2 {
		out = append(out, head[i], head[i+1])
		if i+2 < len(head) {
			out = append(out, ',')
		}
	}
	out = append(out, ',')
	out = append(out, s[n-3:]...)

	return string(out)
}
