package format

import (
	"time"
)

// Getter reads a config value, as config.Get does.
type Getter func(key string) (string, bool)

// Full formats date and time with seconds according to config.
// Example output: "2024-01-23 15:04:05" or "01/23/2024 3:04:05 PM"
func Full(t time.Time, get Getter) string {
	return Date(t, get) + " " + TimeFull(t, get)
}

// Date formats only the date portion according to config.
// Example output: "23/01/2024" or "01/23/2024" or "2024-01-23"
func Date(t time.Time, get Getter) string {
	return t.Format(dateLayout(get))
}

// TimeFull formats time with seconds.
// Example output: "15:04:05" or "3:04:05 PM"
func TimeFull(t time.Time, get Getter) string {
	return t.Format(timeLayout(get))
}

func lookup(get Getter, key string) string {
	if get == nil {
		return ""
	}
	v, _ := get(key)
	return v
}

// dateLayout returns the Go time layout for display_date.
func dateLayout(get Getter) string {
	switch displayDate := lookup(get, "display_date"); displayDate {
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// Assume it's a custom Go time format (e.g., "Jan 02")
		return displayDate
	}
}

// timeLayout returns the Go time layout for display_time.
func timeLayout(get Getter) string {
	switch lookup(get, "display_time") {
	case "12h":
		return "3:04:05 PM"
	default:
		return "15:04:05"
	}
}
