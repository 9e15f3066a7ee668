package campusmap

import (
	"fmt"

	"ecf-server/config"
	"ecf-server/models"
	"ecf-server/util"
)

// CampusMapApiClientMock serves the building directory from a JSON fixture.
type CampusMapApiClientMock struct {
}

// NewCampusMapApiClientMock creates a new instance of CampusMapApiClientMock
func NewCampusMapApiClientMock() *CampusMapApiClientMock {
	return &CampusMapApiClientMock{}
}

// GetBuildings reads the building directory fixture from disk.
func (c *CampusMapApiClientMock) GetBuildings() ([]models.Building, error) {
	buildings, err := util.ReadBuildingsFromJSON(config.GetResourcePath(config.BUILDINGS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read buildings from json")
		return nil, err
	}
	return buildings, nil
}
