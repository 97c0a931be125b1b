package view

import (
	"strconv"
	"strings"
)

// FormatTime renders seconds as minutes:seconds with two-digit seconds.
// Negative input renders as 0:00.
func FormatTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return strconv.FormatInt(seconds/60, 10) + ":" + zeroPad(seconds%60, 2)
}

func zeroPad(value int64, places int) string {
	s := strconv.FormatInt(value, 10)
	if len(s) >= places {
		return s
	}
	return strings.Repeat("0", places-len(s)) + s
}

// FormatTx abbreviates a transaction hash to its first 6 and last 4 characters.
// Shorter input is never returned as is: both ends take what is there, so the
// halves overlap ("abc" renders "abc...abc").
func FormatTx(tx string) string {
	return tx[:min(6, len(tx))] + "..." + tx[max(0, len(tx)-4):]
}
