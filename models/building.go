package models

// Building maps a campus building code to its display name.
type Building struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// BuildingStats is one row of the ranked-buildings summary.
type BuildingStats struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	RoomCount    int    `json:"room_count"`
	SectionCount int    `json:"section_count"`
}
