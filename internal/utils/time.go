package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParsePickup combines the booking form's date and time fields in loc.
func ParsePickup(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	t, err := time.ParseInLocation(PickupDateLayout+" "+PickupTimeLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pickup date/time %q: %w", value, err)
	}
	return t, nil
}

func FormatTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02 15:04:05")
}
