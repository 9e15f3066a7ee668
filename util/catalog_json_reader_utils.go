package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"ecf-server/models"
)

// ReadCourseSectionsFromJSON loads a scraped CourseSection batch from JSON on disk.
func ReadCourseSectionsFromJSON(filePath string) ([]models.CourseSection, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var sections []models.CourseSection
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal course sections: %w", err)
	}
	return sections, nil
}

// WriteCourseSectionsToJSON snapshots a CourseSection batch to disk.
func WriteCourseSectionsToJSON(filePath string, sections []models.CourseSection) error {
	data, err := json.MarshalIndent(sections, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal course sections: %w", err)
	}
	if err := ioutil.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", filePath, err)
	}
	return nil
}

// ReadBuildingsFromJSON loads the building directory list from JSON on disk.
func ReadBuildingsFromJSON(filePath string) ([]models.Building, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var buildings []models.Building
	if err := json.Unmarshal(data, &buildings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal buildings: %w", err)
	}
	return buildings, nil
}

// WriteBuildingsToJSON snapshots the building directory list to disk.
func WriteBuildingsToJSON(filePath string, buildings []models.Building) error {
	data, err := json.MarshalIndent(buildings, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal buildings: %w", err)
	}
	if err := ioutil.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", filePath, err)
	}
	return nil
}

// ReadProgramCodes loads the list of program codes to scrape from JSON on disk.
func ReadProgramCodes(filePath string) ([]string, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal program codes: %w", err)
	}
	return codes, nil
}

// BuildingDirectory flattens a building list into the code -> name mapping
// the schedule engine consumes. When a code repeats, the shortest name wins.
func BuildingDirectory(buildings []models.Building) map[string]string {
	directory := make(map[string]string, len(buildings))
	for _, b := range buildings {
		if b.Code == "" {
			continue
		}
		if current, ok := directory[b.Code]; !ok || len(b.Name) < len(current) {
			directory[b.Code] = b.Name
		}
	}
	return directory
}
