package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RoomRoutes is the handler surface the router wires up.
type RoomRoutes interface {
	GetFreeRooms(w http.ResponseWriter, r *http.Request)
	GetFullAvailability(w http.ResponseWriter, r *http.Request)
	GetBuildings(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	roomHandler RoomRoutes
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	roomHandler RoomRoutes,
	router *mux.Router) *Router {
	return &Router{
		roomHandler: roomHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?prefix={room or building prefix}&day={M|T|W|Th|F|Sat}&at={time}
	r.router.HandleFunc("/v1/rooms/free", r.roomHandler.GetFreeRooms).Methods("GET")

	// expects ?prefix={room or building prefix}&day={M|T|W|Th|F|Sat}
	r.router.HandleFunc("/v1/rooms/availability", r.roomHandler.GetFullAvailability).Methods("GET")

	r.router.HandleFunc("/v1/buildings", r.roomHandler.GetBuildings).Methods("GET")

	r.router.HandleFunc("/ping", r.roomHandler.Ping).Methods("GET")
}
