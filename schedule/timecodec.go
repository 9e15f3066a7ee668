package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot indexes one 10-minute interval of the day. 144 slots cover a full day,
// so slot 0 is 12:00 AM and slot 143 is 11:50 PM.
type Slot int

const (
	// SlotsPerDay is the length of every room/day occupancy row.
	SlotsPerDay = 144

	// Free marks an unoccupied slot in an occupancy row.
	Free = -1
)

// TimeToSlot parses a human time string ("2:30pm", "2pm", "14:00") into a
// slot index. The minute defaults to 0 when omitted. Forms carrying an am/pm
// marker require an hour in [1,12]; bare 24-hour forms accept [0,23]. The
// second return is false for anything malformed.
func TimeToSlot(text string) (Slot, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	pm := strings.Contains(s, "pm")
	twelveHour := pm || strings.Contains(s, "am")
	s = strings.TrimSpace(strings.NewReplacer("am", "", "pm", "").Replace(s))
	if !strings.Contains(s, ":") {
		s += ":00"
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if minute < 0 || minute > 59 {
		return 0, false
	}

	if twelveHour {
		if hour < 1 || hour > 12 {
			return 0, false
		}
		hour = hour % 12
		if pm {
			hour += 12
		}
	} else if hour < 0 || hour > 23 {
		return 0, false
	}

	return Slot((hour*60 + minute) / 10), true
}

// SlotToTime renders a slot as an "H:MM AM/PM" string. The final slot of the
// day renders as "Midnight"; downstream display code depends on that exact
// label, so it must not change.
func SlotToTime(slot Slot) string {
	minutes := int(slot) * 10
	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}

	text := fmt.Sprintf("%d:%02d %s", hour, minute, period)
	if text == "11:50 PM" {
		return "Midnight"
	}
	return text
}
