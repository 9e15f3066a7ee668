package services

import (
	"fmt"
	"log"
	"strings"
	"sync"

	redisdao "ecf-server/dao/redis"
	"ecf-server/models"
	"ecf-server/schedule"
	"ecf-server/util"
)

// ScheduleService owns the occupancy grid and answers availability queries.
// The grid is rebuilt whole on every refresh; queries only read it.
type ScheduleService struct {
	catalogDao *redisdao.RedisCatalogDAO

	sectionsSnapshotPath  string
	buildingsSnapshotPath string

	minRun   int
	earliest schedule.Slot

	mu        sync.RWMutex
	grid      *schedule.Grid
	directory map[string]string
}

// NewScheduleService constructs a ScheduleService. The snapshot paths are the
// JSON fallback used when the Redis cache is cold.
func NewScheduleService(
	catalogDao *redisdao.RedisCatalogDAO,
	sectionsSnapshotPath string,
	buildingsSnapshotPath string,
	minRun int,
	earliest schedule.Slot,
) *ScheduleService {
	return &ScheduleService{
		catalogDao:            catalogDao,
		sectionsSnapshotPath:  sectionsSnapshotPath,
		buildingsSnapshotPath: buildingsSnapshotPath,
		minRun:                minRun,
		earliest:              earliest,
	}
}

// Rebuild loads the section feed and building directory and derives a fresh
// grid from scratch. A missing directory degrades building features but does
// not fail the build; a missing section feed does.
func (ss *ScheduleService) Rebuild() error {
	sections, err := ss.loadSections()
	if err != nil {
		return fmt.Errorf("no course section feed available: %w", err)
	}
	directory := ss.loadDirectory()

	grid, err := schedule.Build(sections, directory)
	if err != nil {
		return err
	}
	if grid.Skipped() > 0 {
		log.Printf("[ScheduleService] Skipped %d malformed room/time candidates during build", grid.Skipped())
	}
	if grid.Overlaps() > 0 {
		log.Printf("[ScheduleService] %d slot assignments overwrote an earlier meeting", grid.Overlaps())
	}

	ss.mu.Lock()
	ss.grid = grid
	ss.directory = directory
	ss.mu.Unlock()

	log.Printf("[ScheduleService] Grid rebuilt: %d rooms from %d sections", len(grid.Rooms()), len(sections))
	return nil
}

func (ss *ScheduleService) loadSections() ([]models.CourseSection, error) {
	sections, err := ss.catalogDao.LoadSections()
	if err == nil && len(sections) > 0 {
		return sections, nil
	}
	log.Printf("[ScheduleService] Redis cache miss for sections, reading snapshot %s", ss.sectionsSnapshotPath)
	return util.ReadCourseSectionsFromJSON(ss.sectionsSnapshotPath)
}

func (ss *ScheduleService) loadDirectory() map[string]string {
	directory, err := ss.catalogDao.LoadBuildingDirectory()
	if err == nil && len(directory) > 0 {
		return directory
	}
	log.Printf("[ScheduleService] Redis cache miss for buildings, reading snapshot %s", ss.buildingsSnapshotPath)
	buildings, err := util.ReadBuildingsFromJSON(ss.buildingsSnapshotPath)
	if err != nil {
		// Building aggregation degrades to empty output without a directory.
		log.Printf("[ScheduleService] No building directory available: %v", err)
		return nil
	}
	return util.BuildingDirectory(buildings)
}

// Ready reports whether a grid has been built.
func (ss *ScheduleService) Ready() bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.grid != nil
}

// FreeRunsAt reports rooms matching prefix that are free at the given slot
// on the given day, with the end of each room's free run.
func (ss *ScheduleService) FreeRunsAt(prefix, day string, at schedule.Slot) []schedule.RoomAvailability {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.grid == nil {
		return nil
	}
	return ss.grid.FreeRunsAt(prefix, day, at, ss.minRun, ss.earliest)
}

// FreeRunsFull returns every free run for rooms matching prefix on the day.
func (ss *ScheduleService) FreeRunsFull(prefix, day string) map[string][]schedule.FreeInterval {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.grid == nil {
		return nil
	}
	return ss.grid.FreeRunsFull(prefix, day, ss.minRun, ss.earliest)
}

// RankedBuildings returns the building summary for the current grid.
func (ss *ScheduleService) RankedBuildings(minRooms, minSections int) []models.BuildingStats {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.grid == nil {
		return nil
	}
	return ss.grid.RankedBuildings(ss.directory, minRooms, minSections)
}

// HasRoomWithPrefix reports whether any room in the grid matches the prefix.
func (ss *ScheduleService) HasRoomWithPrefix(prefix string) bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.grid == nil {
		return false
	}
	upper := strings.ToUpper(prefix)
	for _, room := range ss.grid.Rooms() {
		if strings.HasPrefix(room, upper) {
			return true
		}
	}
	return false
}

// SkippedRecords exposes how many room/time candidates the last build dropped.
func (ss *ScheduleService) SkippedRecords() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.grid == nil {
		return 0
	}
	return ss.grid.Skipped()
}
