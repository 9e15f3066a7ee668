package schedule

import "strings"

// FreeInterval is a maximal run of free slots in one room/day row, End
// exclusive.
type FreeInterval struct {
	Start Slot `json:"start"`
	End   Slot `json:"end"`
}

// RoomAvailability reports the free run covering a queried instant in one
// room; the room stays free until Until.
type RoomAvailability struct {
	Room  string `json:"room"`
	Until Slot   `json:"until"`
}

// FindFreeRuns scans a row for contiguous runs of free slots of at least
// minRun slots, starting at earliest. Slots before earliest are never
// considered even when free; a run touching the end of the row closes at
// SlotsPerDay.
func FindFreeRuns(row []int, minRun int, earliest Slot) []FreeInterval {
	var runs []FreeInterval
	start := Slot(-1)
	for i, owner := range row {
		if Slot(i) < earliest {
			continue
		}
		if owner == Free {
			if start < 0 {
				start = Slot(i)
			}
			continue
		}
		if start >= 0 && int(Slot(i)-start) >= minRun {
			runs = append(runs, FreeInterval{Start: start, End: Slot(i)})
		}
		start = -1
	}
	if start >= 0 && len(row)-int(start) >= minRun {
		runs = append(runs, FreeInterval{Start: start, End: Slot(len(row))})
	}
	return runs
}

// matchRooms returns the grid's room codes starting with prefix, sorted.
// The match is case-insensitive and the empty prefix matches every room.
func (g *Grid) matchRooms(prefix string) []string {
	upper := strings.ToUpper(prefix)
	var matched []string
	for _, room := range g.Rooms() {
		if strings.HasPrefix(room, upper) {
			matched = append(matched, room)
		}
	}
	return matched
}

// FreeRunsAt reports, for every room matching prefix, the free run that
// covers the queried slot on the given day. Rooms occupied at that instant
// are omitted; at most one run is reported per room.
func (g *Grid) FreeRunsAt(prefix, day string, at Slot, minRun int, earliest Slot) []RoomAvailability {
	var out []RoomAvailability
	for _, room := range g.matchRooms(prefix) {
		row, ok := g.Row(room, day)
		if !ok {
			continue
		}
		for _, run := range FindFreeRuns(row, minRun, earliest) {
			if run.Start <= at && at < run.End {
				out = append(out, RoomAvailability{Room: room, Until: run.End})
				break
			}
		}
	}
	return out
}

// FreeRunsFull returns every free run for every room matching prefix on the
// given day. Rooms with no free runs are omitted.
func (g *Grid) FreeRunsFull(prefix, day string, minRun int, earliest Slot) map[string][]FreeInterval {
	out := make(map[string][]FreeInterval)
	for _, room := range g.matchRooms(prefix) {
		row, ok := g.Row(room, day)
		if !ok {
			continue
		}
		if runs := FindFreeRuns(row, minRun, earliest); len(runs) > 0 {
			out[room] = runs
		}
	}
	return out
}
