package campusmap

import (
	"regexp"
	"sort"
	"strings"

	"ecf-server/api"
	"ecf-server/models"
)

// Building codes appear as the last ALL-CAPS parenthetical in a location
// name, e.g. "Mark Taper Hall of Humanities (THH)".
var buildingCodePattern = regexp.MustCompile(`\(([A-Z]+)\)`)

// CampusMapApiClient embeds the common HTTPClient
type CampusMapApiClient struct {
	*api.HTTPClient
	categoryPath string
}

// NewCampusMapApiClient creates a new instance of CampusMapApiClient
func NewCampusMapApiClient(httpClient *api.HTTPClient, categoryPath string) *CampusMapApiClient {
	return &CampusMapApiClient{
		HTTPClient:   httpClient,
		categoryPath: categoryPath,
	}
}

// GetBuildings fetches the campus map category listing and extracts one
// Building per code. When several locations share a code the shortest
// cleaned name wins.
func (c *CampusMapApiClient) GetBuildings() ([]models.Building, error) {
	var response models.CampusCategoryResponse
	if err := c.Request("GET", c.categoryPath, nil, nil, &response); err != nil {
		return nil, err
	}

	byCode := make(map[string]string)
	for _, loc := range response.Children.Locations {
		name := strings.TrimSpace(loc.Name)
		code := ExtractBuildingCode(name)
		if code == "" {
			continue
		}
		cleaned := CleanBuildingName(name, code)
		if current, ok := byCode[code]; !ok || len(cleaned) < len(current) {
			byCode[code] = cleaned
		}
	}

	buildings := make([]models.Building, 0, len(byCode))
	for code, name := range byCode {
		buildings = append(buildings, models.Building{Name: name, Code: code})
	}
	sort.Slice(buildings, func(i, j int) bool {
		return buildings[i].Code < buildings[j].Code
	})
	return buildings, nil
}

// ExtractBuildingCode returns the last uppercase code in parentheses, or ""
// when the name carries none.
func ExtractBuildingCode(name string) string {
	matches := buildingCodePattern.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}

// CleanBuildingName strips the trailing parenthetical holding the code.
func CleanBuildingName(name, code string) string {
	return strings.TrimSpace(strings.TrimSuffix(name, "("+code+")"))
}
