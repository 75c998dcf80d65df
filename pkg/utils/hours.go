package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// slotRe matches the start time of a display slot, e.g. "8:00 AM - 9:30 AM".
var slotRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)

// hoursRe matches a business-hours range, e.g. "8am-3pm daily" or
// "10:30am-4:30pm daily". Day qualifiers are ignored.
var hoursRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

func to24(hour, minute int, period string) int {
	period = strings.ToUpper(period)
	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour*100 + minute
}

// IsOpenDuringSlot reports whether the slot's start time falls inside the
// hours range. Missing or unparseable hours fail open: lack of information
// must never block scheduling.
func IsOpenDuringSlot(hours, timeSlot string) bool {
	if hours == "" {
		return true
	}

	sm := slotRe.FindStringSubmatch(timeSlot)
	if sm == nil {
		return true
	}
	slotHour, _ := strconv.Atoi(sm[1])
	slotMinute, _ := strconv.Atoi(sm[2])
	slotAt := to24(slotHour, slotMinute, sm[3])

	hm := hoursRe.FindStringSubmatch(hours)
	if hm == nil {
		return true
	}
	openHour, _ := strconv.Atoi(hm[1])
	openMinute := 0
	if hm[2] != "" {
		openMinute, _ = strconv.Atoi(hm[2])
	}
	closeHour, _ := strconv.Atoi(hm[4])
	closeMinute := 0
	if hm[5] != "" {
		closeMinute, _ = strconv.Atoi(hm[5])
	}

	openAt := to24(openHour, openMinute, hm[3])
	closeAt := to24(closeHour, closeMinute, hm[6])

	return slotAt >= openAt && slotAt < closeAt
}
