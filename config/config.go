package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog Refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 360
const CATALOG_FETCH_MIN_SLEEP_SECONDS = 1
const CATALOG_FETCH_MAX_SLEEP_SECONDS = 3

// Course catalog (webreg) endpoint
const WEBREG_ENDPOINT_BASE = "https://webreg.usc.edu"
const WEBREG_COOKIES_FILE = "cookies.txt"

// Campus map directory endpoint
const CAMPUS_MAP_ENDPOINT_BASE = "https://api.concept3d.com"
const CAMPUS_MAP_CATEGORY_PATH = "/categories/53722?map=1928&children&key=0001085cc708b9cef47080f064612ca5"

// Availability query knobs
const EARLIEST_START = "9:00am"
const MIN_FREE_RUN_SLOTS = 2

// Building ranking display criteria
const MIN_ROOMS_TO_DISPLAY = 3
const MIN_SECTIONS_TO_DISPLAY = 4

// Buildings table layout
const FIRST_COL_WIDTH = 34
const SECOND_COL_WIDTH = 30
const SEPARATOR_LENGTH = FIRST_COL_WIDTH + SECOND_COL_WIDTH + 25

// HTTP server
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const COURSE_SECTIONS_RESOURCE = "course_sections.json"
const BUILDINGS_RESOURCE = "buildings.json"
const PROGRAM_CODES_RESOURCE = "program_codes.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
