package models

// CampusCategoryResponse is the shape returned by the campus map categories
// endpoint. Only the location names are of interest; building codes are
// embedded in them as a trailing parenthetical.
type CampusCategoryResponse struct {
	Children CampusCategoryChildren `json:"children"`
}

type CampusCategoryChildren struct {
	Locations []CampusLocation `json:"locations"`
}

type CampusLocation struct {
	Name string `json:"name"`
}
