package equalloudness

import (
	"fmt"
	"strconv"
	"strings"
)

// UnsupportedRateError is returned by [New] when the requested sample rate
// has no entry in the active profile table. Supported carries the table's
// rates in ascending order.
type UnsupportedRateError struct {
	Rate      int
	Supported []int
}

func (e *UnsupportedRateError) Error() string {
	rates := make([]string, len(e.Supported))
	for i, r := range e.Supported {
		rates[i] = strconv.Itoa(r)
	}

	return fmt.Sprintf("equalloudness: unsupported sample rate %d (supported: %s)",
		e.Rate, strings.Join(rates, ", "))
}
