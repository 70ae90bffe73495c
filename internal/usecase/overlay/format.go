package overlay

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

func line(label string, value any) string {
	return fmt.Sprintf("%s: %v", label, value)
}

func commas(n int) string {
	return humanize.Comma(int64(n))
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
