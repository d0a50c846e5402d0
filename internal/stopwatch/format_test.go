package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatElapsed(t *testing.T) {
	tests := map[string]struct {
		in   time.Duration
		want string
	}{
		"zero":            {0, "00:00:00:000"},
		"millis":          {45 * time.Millisecond, "00:00:00:045"},
		"sub millisecond": {999 * time.Microsecond, "00:00:00:000"},
		"one of each":     {3_723_045 * time.Millisecond, "01:02:03:045"},
		"minute boundary": {time.Minute, "00:01:00:000"},
		"last of day":     {24*time.Hour - time.Millisecond, "23:59:59:999"},
		"past a day":      {25 * time.Hour, "25:00:00:000"},
		"hundred hours":   {100 * time.Hour, "100:00:00:000"},
		"negative":        {-time.Second, "00:00:00:000"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatElapsed(tt.in))
		})
	}
}
