package cli

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"ecf-server/config"
	"ecf-server/schedule"
	services "ecf-server/service"
)

// Menu is the interactive empty-classroom finder loop. It owns presentation
// only; all availability answers come from the schedule service.
type Menu struct {
	scheduleService *services.ScheduleService
	in              *bufio.Reader
	out             io.Writer
}

func NewMenu(scheduleService *services.ScheduleService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		scheduleService: scheduleService,
		in:              bufio.NewReader(in),
		out:             out,
	}
}

// Run loops until the input stream closes.
func (m *Menu) Run() {
	for {
		m.clearScreen()
		fmt.Fprintln(m.out, "========= Empty Classroom Finder =========")
		printBuildingsTable(m.out, m.scheduleService.RankedBuildings(
			config.MIN_ROOMS_TO_DISPLAY, config.MIN_SECTIONS_TO_DISPLAY))

		fmt.Fprint(m.out, "Enter a room or building name (or leave blank to see all): ")
		prefix, ok := m.readLine()
		if !ok {
			return
		}
		prefix = strings.ToUpper(strings.TrimSpace(prefix))
		if prefix != "" && !m.scheduleService.HasRoomWithPrefix(prefix) {
			fmt.Fprintf(m.out, "Error: No rooms or buildings found matching '%s'.\n", prefix)
			if !m.pause() {
				return
			}
			continue
		}

		fmt.Fprintln(m.out, "\nWhen do you need the room?")
		fmt.Fprintln(m.out, "1. Right now")
		fmt.Fprintln(m.out, "2. At a specific time")
		fmt.Fprintln(m.out, "3. See full availability for today")
		fmt.Fprint(m.out, "> ")
		choice, ok := m.readLine()
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.showNow(prefix)
		case "2":
			if !m.showAtSpecificTime(prefix) {
				return
			}
		case "3":
			m.showFullDay(prefix)
		}

		if !m.pause() {
			return
		}
	}
}

func (m *Menu) showNow(prefix string) {
	now := time.Now()
	day, ok := schedule.DayTokenFor(now)
	if !ok {
		fmt.Fprintln(m.out, "\nNo classes are scheduled today.")
		return
	}
	at := schedule.SlotFor(now)
	fmt.Fprintf(m.out, "\nChecking rooms available at %s today (%s)...\n\n", schedule.SlotToTime(at), day)
	m.printFreeAt(prefix, day, at)
}

func (m *Menu) showAtSpecificTime(prefix string) bool {
	fmt.Fprintln(m.out, "\nEnter time (e.g., 2:00 PM):")
	at, ok := m.readValidTime()
	if !ok {
		return false
	}
	fmt.Fprintln(m.out, "\nEnter the day you need the room for (M, T, W, Th, F, or Sat):")
	day, ok := m.readValidDay()
	if !ok {
		return false
	}
	fmt.Fprintf(m.out, "\nChecking rooms available at %s on %s...\n\n", schedule.SlotToTime(at), day)
	m.printFreeAt(prefix, day, at)
	return true
}

func (m *Menu) showFullDay(prefix string) {
	day, ok := schedule.DayTokenFor(time.Now())
	if !ok {
		fmt.Fprintln(m.out, "\nNo classes are scheduled today.")
		return
	}
	target := prefix
	if target == "" {
		target = "all rooms"
	}
	fmt.Fprintf(m.out, "\nShowing full availability for %s on %s...\n\n", target, day)

	runs := m.scheduleService.FreeRunsFull(prefix, day)
	if len(runs) == 0 {
		fmt.Fprintf(m.out, "No rooms found matching '%s'.\n", prefix)
		return
	}

	rooms := make([]string, 0, len(runs))
	for room := range runs {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	for _, room := range rooms {
		fmt.Fprintf(m.out, "\n%s available:\n", room)
		for _, run := range runs[room] {
			fmt.Fprintf(m.out, "%s to %s\n", schedule.SlotToTime(run.Start), endLabel(run.End))
		}
	}
}

func (m *Menu) printFreeAt(prefix, day string, at schedule.Slot) {
	rooms := m.scheduleService.FreeRunsAt(prefix, day, at)
	if len(rooms) == 0 {
		fmt.Fprintf(m.out, "No rooms found matching '%s'.\n", prefix)
		return
	}
	for _, room := range rooms {
		fmt.Fprintf(m.out, "%s available until %s\n", room.Room, endLabel(room.Until))
	}
}

// readValidTime prompts until the input parses; false means EOF.
func (m *Menu) readValidTime() (schedule.Slot, bool) {
	for {
		fmt.Fprint(m.out, "> ")
		line, ok := m.readLine()
		if !ok {
			return 0, false
		}
		if slot, valid := schedule.TimeToSlot(line); valid {
			return slot, true
		}
		fmt.Fprintln(m.out, "Invalid time format! Please enter a valid time (e.g., 2:30pm).")
	}
}

// readValidDay prompts until the input matches the day vocabulary.
func (m *Menu) readValidDay() (string, bool) {
	for {
		fmt.Fprint(m.out, "> ")
		line, ok := m.readLine()
		if !ok {
			return "", false
		}
		if day, valid := schedule.NormalizeDayQuery(line); valid {
			return day, true
		}
		fmt.Fprintln(m.out, "Invalid day! Please enter M, T, W, Th, F, or Sat.")
	}
}

func (m *Menu) pause() bool {
	fmt.Fprint(m.out, "\nPress Enter to search again or Ctrl+C to exit...")
	_, ok := m.readLine()
	return ok
}

func (m *Menu) readLine() (string, bool) {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (m *Menu) clearScreen() {
	fmt.Fprint(m.out, "\033[H\033[2J")
}

// endLabel renders a run end; end-exclusive slots may equal SlotsPerDay.
func endLabel(end schedule.Slot) string {
	if end >= schedule.SlotsPerDay {
		return "Midnight"
	}
	return schedule.SlotToTime(end)
}
