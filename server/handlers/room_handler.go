package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"ecf-server/config"
	"ecf-server/schedule"
	services "ecf-server/service"
)

const (
	PREFIX_QUERY_ARG = "prefix"
	DAY_QUERY_ARG    = "day"
	AT_QUERY_ARG     = "at"
)

// FreeRoom is one room free at the queried instant.
type FreeRoom struct {
	Room       string `json:"room"`
	UntilSlot  int    `json:"until_slot"`
	UntilLabel string `json:"until"`
}

// Interval is one free run with both slot indices and display labels.
type Interval struct {
	StartSlot  int    `json:"start_slot"`
	EndSlot    int    `json:"end_slot"`
	StartLabel string `json:"start"`
	EndLabel   string `json:"end"`
}

type RoomHandler struct {
	scheduleService *services.ScheduleService
}

func NewRoomHandler(scheduleService *services.ScheduleService) *RoomHandler {
	return &RoomHandler{scheduleService: scheduleService}
}

// GetFreeRooms handles GET /v1/rooms/free?prefix=&day=&at=
// Day and time default to "now" when omitted.
func (h *RoomHandler) GetFreeRooms(w http.ResponseWriter, r *http.Request) {
	prefix, day, ok := h.parsePrefixAndDay(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	at := schedule.SlotFor(time.Now())
	if v := r.URL.Query().Get(AT_QUERY_ARG); v != "" {
		slot, valid := schedule.TimeToSlot(v)
		if !valid {
			http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		at = slot
	}

	rooms := h.scheduleService.FreeRunsAt(prefix, day, at)
	result := make([]FreeRoom, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, FreeRoom{
			Room:       room.Room,
			UntilSlot:  int(room.Until),
			UntilLabel: untilLabel(room.Until),
		})
	}
	writeJSON(w, result)
}

// GetFullAvailability handles GET /v1/rooms/availability?prefix=&day=
func (h *RoomHandler) GetFullAvailability(w http.ResponseWriter, r *http.Request) {
	prefix, day, ok := h.parsePrefixAndDay(r.URL.Query(), w)
	if !ok {
		return
	}

	runs := h.scheduleService.FreeRunsFull(prefix, day)

	// Stable room order for the response
	rooms := make([]string, 0, len(runs))
	for room := range runs {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	result := make(map[string][]Interval, len(runs))
	for _, room := range rooms {
		intervals := make([]Interval, 0, len(runs[room]))
		for _, run := range runs[room] {
			intervals = append(intervals, Interval{
				StartSlot:  int(run.Start),
				EndSlot:    int(run.End),
				StartLabel: schedule.SlotToTime(run.Start),
				EndLabel:   untilLabel(run.End),
			})
		}
		result[room] = intervals
	}
	writeJSON(w, result)
}

// GetBuildings handles GET /v1/buildings
func (h *RoomHandler) GetBuildings(w http.ResponseWriter, r *http.Request) {
	ranked := h.scheduleService.RankedBuildings(config.MIN_ROOMS_TO_DISPLAY, config.MIN_SECTIONS_TO_DISPLAY)
	writeJSON(w, ranked)
}

// Ping handles GET /ping
func (h *RoomHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *RoomHandler) parsePrefixAndDay(vals url.Values, w http.ResponseWriter) (prefix, day string, ok bool) {
	prefix = vals.Get(PREFIX_QUERY_ARG)

	if v := vals.Get(DAY_QUERY_ARG); v != "" {
		normalized, valid := schedule.NormalizeDayQuery(v)
		if !valid {
			http.Error(w, "Invalid argument "+DAY_QUERY_ARG, http.StatusBadRequest)
			return
		}
		day = normalized
	} else {
		today, valid := schedule.DayTokenFor(time.Now())
		if !valid {
			http.Error(w, "No schedule data for today; pass an explicit "+DAY_QUERY_ARG, http.StatusBadRequest)
			return
		}
		day = today
	}
	ok = true
	return
}

// untilLabel renders a run end; end-exclusive slots may equal SlotsPerDay.
func untilLabel(end schedule.Slot) string {
	if end >= schedule.SlotsPerDay {
		return "Midnight"
	}
	return schedule.SlotToTime(end)
}

func writeJSON(w http.ResponseWriter, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding response:", err)
	}
}
