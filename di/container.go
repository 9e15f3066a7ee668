package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"ecf-server/api"
	"ecf-server/api/campusmap"
	"ecf-server/api/webreg"
	"ecf-server/config"
	"ecf-server/dao/redis"
	"ecf-server/db"
	"ecf-server/schedule"
	"ecf-server/server"
	"ecf-server/server/handlers"
	services "ecf-server/service"
	"ecf-server/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient               db.RedisClient
	RedisCatalogDao           *redis.RedisCatalogDAO
	CampusMapAPI              campusmap.CampusMapAPI
	CourseCatalogAPI          webreg.CourseCatalogAPI
	ScheduleService           *services.ScheduleService
	CatalogRefresherService   *services.CatalogRefresherService
	RoomHandler               *handlers.RoomHandler
	MuxRouter                 *mux.Router
	Router                    *server.Router
	ClassroomFinderHttpServer *server.ClassroomFinderHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		log.Printf("Using mock redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewStoreRedisClient(ctx, redisInternalClient)
	}
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Catalog DAO
	redisCatalogDao := redis.NewRedisCatalogDAO(redisClient)

	// Initialize campus map API - mock reads the local buildings fixture
	var campusMapApiClient campusmap.CampusMapAPI
	if env != "prod" {
		log.Printf("Using mock campus map api")
		campusMapApiClient = campusmap.NewCampusMapApiClientMock()
	} else {
		log.Printf("Using prod campus map api")
		httpClient := api.NewHTTPClient(config.CAMPUS_MAP_ENDPOINT_BASE)
		campusMapApiClient = campusmap.NewCampusMapApiClient(httpClient, config.CAMPUS_MAP_CATEGORY_PATH)
	}

	// Initialize course catalog API - prod needs session cookies for webreg
	var courseCatalogApiClient webreg.CourseCatalogAPI
	if env != "prod" {
		log.Printf("Using mock course catalog api")
		courseCatalogApiClient = webreg.NewWebRegApiClientMock()
	} else {
		log.Printf("Using prod course catalog api")
		httpClient := api.NewHTTPClient(config.WEBREG_ENDPOINT_BASE)
		webregClient := webreg.NewWebRegApiClient(httpClient)
		if err := webregClient.SetCookiesFromFile(config.GetResourcePath(config.WEBREG_COOKIES_FILE)); err != nil {
			log.Printf("Could not load webreg cookies: %v", err)
		}
		courseCatalogApiClient = webregClient
	}

	earliest, ok := schedule.TimeToSlot(config.EARLIEST_START)
	if !ok {
		panic(fmt.Sprintf("Invalid EARLIEST_START config value: %s", config.EARLIEST_START))
	}

	// Initialize schedule service with the DAO and snapshot fallbacks
	scheduleService := services.NewScheduleService(
		redisCatalogDao,
		config.GetResourcePath(config.COURSE_SECTIONS_RESOURCE),
		config.GetResourcePath(config.BUILDINGS_RESOURCE),
		config.MIN_FREE_RUN_SLOTS,
		earliest,
	)

	programCodes, err := util.ReadProgramCodes(config.GetResourcePath(config.PROGRAM_CODES_RESOURCE))
	if err != nil {
		log.Printf("Could not load program codes: %v", err)
	}

	catalogRefresherService := services.NewCatalogRefresherService(
		redisCatalogDao,
		campusMapApiClient,
		courseCatalogApiClient,
		scheduleService,
		programCodes,
		config.CATALOG_FETCH_MIN_SLEEP_SECONDS*time.Second,
		config.CATALOG_FETCH_MAX_SLEEP_SECONDS*time.Second,
		config.GetResourcePath(config.COURSE_SECTIONS_RESOURCE),
		config.GetResourcePath(config.BUILDINGS_RESOURCE),
	)

	// Initialize room handler
	roomHandler := handlers.NewRoomHandler(scheduleService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(roomHandler, muxRouter)

	// Initialize classroom finder server
	classroomFinderHttpServer := server.NewClassroomFinderHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	return &Container{
		RedisClient:               redisClient,
		RedisCatalogDao:           redisCatalogDao,
		CampusMapAPI:              campusMapApiClient,
		CourseCatalogAPI:          courseCatalogApiClient,
		ScheduleService:           scheduleService,
		CatalogRefresherService:   catalogRefresherService,
		RoomHandler:               roomHandler,
		MuxRouter:                 muxRouter,
		Router:                    router,
		ClassroomFinderHttpServer: classroomFinderHttpServer,
	}
}
