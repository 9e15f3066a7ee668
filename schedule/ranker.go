package schedule

import (
	"sort"

	"ecf-server/models"
)

// RankedBuildings aggregates the grid's resolved meetings into per-building
// room and section counts, filters out buildings below the configured
// minimums, and orders the rest by section count descending. The sort is
// stable so ties keep aggregation order. A missing directory degrades to an
// empty summary rather than an error.
func (g *Grid) RankedBuildings(directory map[string]string, minRooms, minSections int) []models.BuildingStats {
	if len(directory) == 0 {
		return nil
	}

	var out []models.BuildingStats
	for _, code := range g.buildingOrder {
		roomCount := len(g.buildingRooms[code])
		sectionCount := g.buildingSections[code]
		if roomCount < minRooms || sectionCount < minSections {
			continue
		}
		out = append(out, models.BuildingStats{
			Code:         code,
			Name:         directory[code],
			RoomCount:    roomCount,
			SectionCount: sectionCount,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SectionCount > out[j].SectionCount
	})
	return out
}
