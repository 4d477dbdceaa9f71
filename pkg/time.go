package pkg

import (
	"strconv"
	"strings"
	"time"
)

// timeUnit holds one display unit for the compact formatter.
type timeUnit struct {
	ShortName string
	Value     time.Duration
}

// Units from largest to smallest; the formatter emits at most two.
var units = []timeUnit{
	{ShortName: "d", Value: 24 * time.Hour},
	{ShortName: "h", Value: time.Hour},
	{ShortName: "m", Value: time.Minute},
	{ShortName: "s", Value: time.Second},
	{ShortName: "ms", Value: time.Millisecond},
}

// FormatDurationCompact renders a duration for dashboards: "1m23s", "450ms".
func FormatDurationCompact(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		if d < time.Millisecond {
			return "<1ms"
		}
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}

	var builder strings.Builder
	remaining := d
	parts := 0
	for _, unit := range units {
		if remaining < unit.Value {
			continue
		}
		count := remaining / unit.Value
		builder.WriteString(strconv.FormatInt(int64(count), 10))
		builder.WriteString(unit.ShortName)
		remaining %= unit.Value
		parts++
		if parts == 2 || remaining == 0 {
			break
		}
	}
	return builder.String()
}
