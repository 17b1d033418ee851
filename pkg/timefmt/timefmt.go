package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// FormatDate renders the calendar date of t in its own location. The value
// must not be converted to UTC first: in positive-offset timezones that can
// shift a local midnight back to the previous day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses "YYYY-MM-DD" as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// To12Hour converts a 24-hour "HH:MM" time to the display form used for slot
// selection, e.g. "14:30" -> "2:30 PM". Hour 0 maps to "12:MM AM" and hour 12
// to "12:MM PM".
func To12Hour(hhmm string) (string, error) {
	hour, minute, err := splitHourMinute(hhmm)
	if err != nil {
		return "", err
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period), nil
}

// To24Hour converts a display time like "2:30 PM" back to "14:30".
func To24Hour(display string) (string, error) {
	hour, minute, err := parseDisplay(display)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// CombineDateTime builds a single timestamp from a calendar date and a display
// slot, keeping the date's location.
func CombineDateTime(date time.Time, display string) (time.Time, error) {
	hour, minute, err := parseDisplay(display)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

func parseDisplay(display string) (int, int, error) {
	parts := strings.Fields(strings.TrimSpace(display))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid display time %q", display)
	}

	period := strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return 0, 0, fmt.Errorf("invalid period in display time %q", display)
	}

	hour, minute, err := splitHourMinute(parts[0])
	if err != nil {
		return 0, 0, err
	}
	if hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("invalid hour in display time %q", display)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}

	return hour, minute, nil
}

func splitHourMinute(hhmm string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", hhmm)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q", hhmm)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q", hhmm)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", hhmm)
	}

	return hour, minute, nil
}
