package schedule

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"ecf-server/models"
)

// The catalog prints meeting times as "HH:MMam-HH:MMpm"; anything else in the
// time field (TBA, online) is not schedulable.
var timeRangePattern = regexp.MustCompile(`(\d{2}:\d{2}(?:am|pm))-(\d{2}:\d{2}(?:am|pm))`)

// ErrEmptyFeed is returned when a grid is built from zero sections.
var ErrEmptyFeed = errors.New("schedule: empty course section feed")

// Meeting is one normalized room/time occurrence derived from a section.
// A section with several rooms or several time ranges yields one meeting per
// room/range pair, all sharing the section's day set.
type Meeting struct {
	ID          int
	CourseID    string
	CourseName  string
	Section     string
	Room        string
	Prefix      string
	PrefixKnown bool
	Start       Slot
	End         Slot // exclusive
	Days        []string
}

// Grid is the per-room, per-day occupancy model. It is built once from the
// full section feed and is read-only afterwards; queries never mutate it.
type Grid struct {
	rooms    map[string]map[string][]int // room -> day -> slot owners
	meetings []Meeting
	skipped  int
	overlaps int

	buildingRooms    map[string]map[string]struct{}
	buildingSections map[string]int
	buildingOrder    []string
}

// Build derives meetings from every section and accumulates them into a
// fresh grid. Malformed times, days, or locations drop the smallest affected
// piece and never abort the build; only an empty feed is a hard failure.
// Room codes are uppercased and prefixes resolved against the directory.
func Build(sections []models.CourseSection, directory map[string]string) (*Grid, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyFeed
	}

	g := &Grid{
		rooms:            make(map[string]map[string][]int),
		buildingRooms:    make(map[string]map[string]struct{}),
		buildingSections: make(map[string]int),
	}
	for _, section := range sections {
		g.ingest(section, directory)
	}
	for _, m := range g.meetings {
		g.mark(m)
	}
	return g, nil
}

func (g *Grid) ingest(section models.CourseSection, directory map[string]string) {
	timeMatches := timeRangePattern.FindAllStringSubmatch(section.Time, -1)
	if len(timeMatches) == 0 {
		return // non-schedulable (online/TBA), not an error
	}
	days := ExtractDays(section.Days)

	for _, mention := range SplitLocation(section.Location) {
		room := strings.ToUpper(mention.Code)
		prefix, known := ResolveBuildingPrefix(room, directory)
		if known {
			g.countBuilding(prefix, room)
		}

		for _, tm := range timeMatches {
			start, okStart := TimeToSlot(tm[1])
			end, okEnd := TimeToSlot(tm[2])
			if !okStart || !okEnd || start >= end {
				g.skipped++
				continue
			}
			g.meetings = append(g.meetings, Meeting{
				ID:          len(g.meetings),
				CourseID:    section.CourseID,
				CourseName:  section.CourseName,
				Section:     section.Section,
				Room:        room,
				Prefix:      prefix,
				PrefixKnown: known,
				Start:       start,
				End:         end,
				Days:        days,
			})
		}
	}
}

// countBuilding records one section occurrence and the room itself against a
// resolved building prefix, for the ranked-buildings summary.
func (g *Grid) countBuilding(prefix, room string) {
	if _, seen := g.buildingRooms[prefix]; !seen {
		g.buildingRooms[prefix] = make(map[string]struct{})
		g.buildingOrder = append(g.buildingOrder, prefix)
	}
	g.buildingRooms[prefix][room] = struct{}{}
	g.buildingSections[prefix]++
}

// mark writes the meeting's ID into its room/day rows. Later meetings
// overwrite earlier ones on overlap (last write wins); overlaps are counted
// but not rejected.
func (g *Grid) mark(m Meeting) {
	rows, ok := g.rooms[m.Room]
	if !ok {
		rows = make(map[string][]int, len(Days))
		for _, day := range Days {
			row := make([]int, SlotsPerDay)
			for i := range row {
				row[i] = Free
			}
			rows[day] = row
		}
		g.rooms[m.Room] = rows
	}
	for _, day := range m.Days {
		row, ok := rows[day]
		if !ok {
			continue // token outside the day vocabulary
		}
		for i := m.Start; i < m.End; i++ {
			if row[i] != Free {
				g.overlaps++
			}
			row[i] = m.ID
		}
	}
}

// Rooms returns all room codes in the grid, sorted.
func (g *Grid) Rooms() []string {
	rooms := make([]string, 0, len(g.rooms))
	for room := range g.rooms {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

// Row returns the occupancy row for one room and day.
func (g *Grid) Row(room, day string) ([]int, bool) {
	rows, ok := g.rooms[room]
	if !ok {
		return nil, false
	}
	row, ok := rows[day]
	return row, ok
}

// Meetings returns every normalized meeting in ingestion order.
func (g *Grid) Meetings() []Meeting {
	return g.meetings
}

// Skipped reports how many room/time-range candidates were dropped for
// failing the slot invariant.
func (g *Grid) Skipped() int {
	return g.skipped
}

// Overlaps reports how many slot assignments overwrote an earlier meeting.
func (g *Grid) Overlaps() int {
	return g.overlaps
}
