package timefmt

import "time"

const (
	dateTimeLayout = "02.01.2006 15:04:05"
	timeLayout     = "15:04"
)

// FormatTimestamp renders unix seconds in the local timezone, either as
// "DD.MM.YYYY HH:MM:SS" or, with timeOnly, as "HH:MM".
func FormatTimestamp(unixSeconds int64, timeOnly bool) string {
	return FormatIn(time.Local, unixSeconds, timeOnly)
}

// FormatIn is FormatTimestamp for an explicit location
func FormatIn(loc *time.Location, unixSeconds int64, timeOnly bool) string {
	t := time.Unix(unixSeconds, 0).In(loc)
	if timeOnly {
		return t.Format(timeLayout)
	}
	return t.Format(dateTimeLayout)
}
