package http

import (
	"shareit-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the full REST surface of the core service.
func NewRouter(
	userSvc service.UserService,
	itemSvc service.ItemService,
	requestSvc service.RequestService,
	bookingSvc service.BookingService,
) *mux.Router {
	userHandler := NewUserHandler(userSvc)
	itemHandler := NewItemHandler(itemSvc)
	requestHandler := NewRequestHandler(requestSvc)
	bookingHandler := NewBookingHandler(bookingSvc)

	router := mux.NewRouter()
	router.Use(RequestLogging)

	router.HandleFunc("/users", userHandler.List).Methods("GET")
	router.HandleFunc("/users", userHandler.Create).Methods("POST")
	router.HandleFunc("/users/{id}", userHandler.Get).Methods("GET")
	router.HandleFunc("/users/{id}", userHandler.Patch).Methods("PATCH")
	router.HandleFunc("/users/{id}", userHandler.Delete).Methods("DELETE")

	// Fixed paths are registered before their parameterized siblings.
	router.HandleFunc("/items/search", itemHandler.Search).Methods("GET")
	router.HandleFunc("/items", itemHandler.Create).Methods("POST")
	router.HandleFunc("/items", itemHandler.ListForUser).Methods("GET")
	router.HandleFunc("/items/{id}", itemHandler.Get).Methods("GET")
	router.HandleFunc("/items/{id}", itemHandler.Patch).Methods("PATCH")
	router.HandleFunc("/items/{id}/comment", itemHandler.AddComment).Methods("POST")

	router.HandleFunc("/requests/all", requestHandler.ListAll).Methods("GET")
	router.HandleFunc("/requests", requestHandler.Create).Methods("POST")
	router.HandleFunc("/requests", requestHandler.ListOwn).Methods("GET")
	router.HandleFunc("/requests/{id}", requestHandler.Get).Methods("GET")

	router.HandleFunc("/bookings/owner", bookingHandler.ListForOwner).Methods("GET")
	router.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	router.HandleFunc("/bookings", bookingHandler.ListForBooker).Methods("GET")
	router.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods("GET")
	router.HandleFunc("/bookings/{id}", bookingHandler.ChangeStatus).Methods("PATCH")

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
