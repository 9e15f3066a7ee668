package campusmap

import "ecf-server/models"

// CampusMapAPI defines the interface for fetching the building directory
// from the campus map provider.
type CampusMapAPI interface {
	GetBuildings() ([]models.Building, error)
}
