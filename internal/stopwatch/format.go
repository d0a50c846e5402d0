package stopwatch

import (
	"fmt"
	"time"
)

// FormatElapsed renders d as HH:mm:ss:SSS. Hours widen past 99 instead of
// wrapping; negative input renders as zero.
func FormatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	h := ms / 3_600_000
	m := (ms / 60_000) % 60
	s := (ms / 1000) % 60
	return fmt.Sprintf("%02d:%02d:%02d:%03d", h, m, s, ms%1000)
}
