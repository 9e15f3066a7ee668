package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ecf-server/db"
	"ecf-server/models"
)

const COURSE_SECTIONS_KEY_V1 = "course_sections_v1"
const BUILDING_KEY_FORMAT_V1 = "building_v1:%s"

// RedisCatalogDAO caches the scraped course catalog and building directory
// between runs using Redis.
type RedisCatalogDAO struct {
	client db.RedisClient
}

// NewRedisCatalogDAO initializes a RedisCatalogDAO with the Redis client.
func NewRedisCatalogDAO(client db.RedisClient) *RedisCatalogDAO {
	return &RedisCatalogDAO{client: client}
}

// SaveSections stores the full section batch as one JSON blob. The feed is
// always rebuilt whole, so there is no per-section keying.
func (dao *RedisCatalogDAO) SaveSections(sections []models.CourseSection) error {
	data, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("failed to marshal course sections: %w", err)
	}
	if err := dao.client.Set(COURSE_SECTIONS_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set course sections in redis: %w", err)
	}
	log.Printf("[RedisCatalogDAO] Saved %d course sections", len(sections))
	return nil
}

// LoadSections retrieves the cached section batch.
func (dao *RedisCatalogDAO) LoadSections() ([]models.CourseSection, error) {
	str, err := dao.client.Get(COURSE_SECTIONS_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to get course sections from redis: %w", err)
	}
	var sections []models.CourseSection
	if err := json.Unmarshal([]byte(str), &sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal course sections JSON: %w", err)
	}
	return sections, nil
}

// UpsertBuilding stores one building keyed by its code.
func (dao *RedisCatalogDAO) UpsertBuilding(b models.Building) error {
	key := fmt.Sprintf(BUILDING_KEY_FORMAT_V1, b.Code)
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal building %s: %w", b.Code, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set building in redis: %w", err)
	}
	return nil
}

// LoadBuildingDirectory scans the building keys and returns the code -> name
// mapping the schedule engine consumes.
func (dao *RedisCatalogDAO) LoadBuildingDirectory() (map[string]string, error) {
	pattern := fmt.Sprintf(BUILDING_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list building keys: %w", err)
	}

	directory := make(map[string]string, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[RedisCatalogDAO] Skipping building key %s due to error: %v", k, err)
			continue
		}
		var b models.Building
		if err := json.Unmarshal([]byte(str), &b); err != nil {
			log.Printf("[RedisCatalogDAO] Skipping malformed building under %s: %v", k, err)
			continue
		}
		directory[b.Code] = b.Name
	}
	return directory, nil
}

// ListBuildingCodes returns all building codes present in the cache.
func (dao *RedisCatalogDAO) ListBuildingCodes() ([]string, error) {
	pattern := fmt.Sprintf(BUILDING_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list building keys: %w", err)
	}
	codes := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(BUILDING_KEY_FORMAT_V1, "")
	for _, k := range keys {
		codes = append(codes, strings.TrimPrefix(k, prefix))
	}
	return codes, nil
}

// DeleteBuilding removes one building from the cache.
func (dao *RedisCatalogDAO) DeleteBuilding(code string) error {
	key := fmt.Sprintf(BUILDING_KEY_FORMAT_V1, code)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete building key %s: %w", key, err)
	}
	log.Printf("[RedisCatalogDAO] Deleted cached building %s", code)
	return nil
}
