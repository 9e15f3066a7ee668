package services

import (
	"log"
	"math/rand"
	"time"

	"ecf-server/api/campusmap"
	"ecf-server/api/webreg"
	redisdao "ecf-server/dao/redis"
	"ecf-server/models"
	"ecf-server/util"
)

// CatalogRefresherService periodically re-scrapes the course catalog and the
// building directory and stores both in Redis, then asks the schedule
// service to rebuild its grid.
type CatalogRefresherService struct {
	catalogDao      *redisdao.RedisCatalogDAO
	campusMapAPI    campusmap.CampusMapAPI
	courseCatalog   webreg.CourseCatalogAPI
	scheduleService *ScheduleService

	programCodes []string
	minSleep     time.Duration
	maxSleep     time.Duration

	sectionsSnapshotPath  string
	buildingsSnapshotPath string
}

// NewCatalogRefresherService constructs a new Refresher with dependencies.
func NewCatalogRefresherService(
	catalogDao *redisdao.RedisCatalogDAO,
	campusMapAPI campusmap.CampusMapAPI,
	courseCatalog webreg.CourseCatalogAPI,
	scheduleService *ScheduleService,
	programCodes []string,
	minSleep, maxSleep time.Duration,
	sectionsSnapshotPath, buildingsSnapshotPath string,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		catalogDao:            catalogDao,
		campusMapAPI:          campusMapAPI,
		courseCatalog:         courseCatalog,
		scheduleService:       scheduleService,
		programCodes:          programCodes,
		minSleep:              minSleep,
		maxSleep:              maxSleep,
		sectionsSnapshotPath:  sectionsSnapshotPath,
		buildingsSnapshotPath: buildingsSnapshotPath,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresher job.")
		if err := cr.RefreshCatalogData(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalogData returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalogData completed successfully.")
		}
	}
}

// RefreshCatalogData orchestrates the three steps: building directory fetch,
// per-program section scrape, grid rebuild.
func (cr *CatalogRefresherService) RefreshCatalogData() error {
	// 1) Refresh the building directory
	cr.refreshBuildings()

	// 2) Scrape sections per program code
	sections := cr.scrapeSections()
	if len(sections) == 0 {
		log.Println("[CatalogRefresherService] No sections scraped; keeping the previous grid.")
		return nil
	}
	if err := cr.catalogDao.SaveSections(sections); err != nil {
		return err
	}
	// Snapshot to disk so a cold start without Redis still has a feed.
	if err := util.WriteCourseSectionsToJSON(cr.sectionsSnapshotPath, sections); err != nil {
		log.Printf("[CatalogRefresherService] Could not snapshot sections: %v", err)
	}

	// 3) Rebuild the grid from the fresh data
	return cr.scheduleService.Rebuild()
}

func (cr *CatalogRefresherService) refreshBuildings() {
	log.Println("[CatalogRefresherService] Fetching building directory")
	buildings, err := cr.campusMapAPI.GetBuildings()
	if err != nil {
		log.Printf("[CatalogRefresherService] Building directory fetch failed: %v", err)
		return
	}
	for _, b := range buildings {
		if err := cr.catalogDao.UpsertBuilding(b); err != nil {
			log.Printf("[CatalogRefresherService] Upsert failed for %s: %v", b.Code, err)
		}
	}
	if err := util.WriteBuildingsToJSON(cr.buildingsSnapshotPath, buildings); err != nil {
		log.Printf("[CatalogRefresherService] Could not snapshot buildings: %v", err)
	}
	log.Printf("[CatalogRefresherService] Stored %d buildings", len(buildings))
}

func (cr *CatalogRefresherService) scrapeSections() []models.CourseSection {
	var sections []models.CourseSection
	log.Printf("[CatalogRefresherService] Scraping %d program codes", len(cr.programCodes))

	for i, code := range cr.programCodes {
		log.Printf("[CatalogRefresherService] Fetching sections for %s (%d/%d)", code, i+1, len(cr.programCodes))
		fetched, err := cr.courseCatalog.FetchSections(code)
		if err != nil {
			log.Printf("[CatalogRefresherService] Failed to fetch %s: %v", code, err)
			continue
		}
		if len(fetched) > 0 {
			log.Printf("[CatalogRefresherService] Got %d sections for %s, first: %s",
				len(fetched), code, fetched[0].ToString())
		}
		sections = append(sections, fetched...)

		if i < len(cr.programCodes)-1 {
			cr.sleepBetweenFetches()
		}
	}
	return sections
}

// sleepBetweenFetches jitters the scrape pace so the catalog host is not
// hammered with back-to-back page fetches.
func (cr *CatalogRefresherService) sleepBetweenFetches() {
	if cr.maxSleep <= cr.minSleep {
		time.Sleep(cr.minSleep)
		return
	}
	wait := cr.minSleep + time.Duration(rand.Int63n(int64(cr.maxSleep-cr.minSleep)))
	time.Sleep(wait)
}
