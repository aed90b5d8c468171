package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"

	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode gateway error", "error", err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

// Router builds the gateway surface: the same routes as the core, each
// re-validated before forwarding.
func (g *Gateway) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(g.rateLimit)

	router.HandleFunc("/users", g.passthrough).Methods("GET")
	router.HandleFunc("/users", g.createUser).Methods("POST")
	router.HandleFunc("/users/{id}", g.passthrough).Methods("GET", "DELETE")
	router.HandleFunc("/users/{id}", g.patchUser).Methods("PATCH")

	router.HandleFunc("/items/search", g.passthrough).Methods("GET")
	router.HandleFunc("/items", g.createItem).Methods("POST")
	router.HandleFunc("/items", g.paged).Methods("GET")
	router.HandleFunc("/items/{id}", g.passthrough).Methods("GET")
	router.HandleFunc("/items/{id}", g.patchItem).Methods("PATCH")
	router.HandleFunc("/items/{id}/comment", g.addComment).Methods("POST")

	router.HandleFunc("/requests/all", g.paged).Methods("GET")
	router.HandleFunc("/requests", g.createRequest).Methods("POST")
	router.HandleFunc("/requests", g.passthrough).Methods("GET")
	router.HandleFunc("/requests/{id}", g.passthrough).Methods("GET")

	router.HandleFunc("/bookings/owner", g.listBookings).Methods("GET")
	router.HandleFunc("/bookings", g.createBooking).Methods("POST")
	router.HandleFunc("/bookings", g.listBookings).Methods("GET")
	router.HandleFunc("/bookings/{id}", g.passthrough).Methods("GET")
	router.HandleFunc("/bookings/{id}", g.passthrough).Methods("PATCH")

	return router
}

func (g *Gateway) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.limiter != nil {
			key := r.Header.Get(headerSharerUserID)
			if key == "" {
				key = r.RemoteAddr
			}
			if !g.limiter.allow(key) {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// passthrough forwards without gateway-side validation.
func (g *Gateway) passthrough(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	g.forward(w, r, body)
}

// paged validates the shared from/size bounds before forwarding.
func (g *Gateway) paged(w http.ResponseWriter, r *http.Request) {
	if !g.checkPage(w, r) {
		return
	}
	g.forward(w, r, nil)
}

func (g *Gateway) checkPage(w http.ResponseWriter, r *http.Request) bool {
	from, size := 0, 20
	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, "malformed from parameter")
			return false
		}
		from = v
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, "malformed size parameter")
			return false
		}
		size = v
	}
	if size < 1 || from < 0 {
		badRequest(w, "")
		return false
	}
	return true
}

type userBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (g *Gateway) createUser(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	var u userBody
	if err := json.Unmarshal(body, &u); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if u.Name == nil || *u.Name == "" {
		badRequest(w, "user name must not be empty")
		return
	}
	if u.Email == nil || !strings.Contains(*u.Email, "@") {
		badRequest(w, "malformed user email")
		return
	}
	g.forward(w, r, body)
}

func (g *Gateway) patchUser(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	var u userBody
	if err := json.Unmarshal(body, &u); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if u.Name != nil && *u.Name == "" {
		badRequest(w, "user name must not be empty")
		return
	}
	if u.Email != nil && !strings.Contains(*u.Email, "@") {
		badRequest(w, "malformed user email")
		return
	}
	g.forward(w, r, body)
}

type itemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

func (g *Gateway) createItem(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	var it itemBody
	if err := json.Unmarshal(body, &it); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if it.Name == nil || *it.Name == "" {
		badRequest(w, "item name must not be empty")
		return
	}
	if it.Description == nil || *it.Description == "" {
		badRequest(w, "item description must not be empty")
		return
	}
	if it.Available == nil {
		badRequest(w, "item availability must not be empty")
		return
	}
	g.forward(w, r, body)
}

func (g *Gateway) patchItem(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	var it itemBody
	if err := json.Unmarshal(body, &it); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if it.Name != nil && *it.Name == "" {
		badRequest(w, "item name must not be empty")
		return
	}
	if it.Description != nil && *it.Description == "" {
		badRequest(w, "item description must not be empty")
		return
	}
	g.forward(w, r, body)
}

type commentBody struct {
	Text string `json:"text"`
}

func (g *Gateway) addComment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	var c commentBody
	if err := json.Unmarshal(body, &c); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if c.Text == "" {
		badRequest(w, "")
		return
	}
	g.forward(w, r, body)
}

type requestBody struct {
	Description string `json:"description"`
}

func (g *Gateway) createRequest(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	var req requestBody
	if err := json.Unmarshal(body, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if req.Description == "" {
		badRequest(w, "request description must not be empty")
		return
	}
	g.forward(w, r, body)
}

type bookingBody struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

func (g *Gateway) createBooking(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		badRequest(w, "malformed request body")
		return
	}
	var b bookingBody
	if err := json.Unmarshal(body, &b); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if b.Start == nil || b.End == nil {
		badRequest(w, "")
		return
	}
	now := time.Now()
	if !b.Start.After(now) || !b.End.After(now) || !b.Start.Before(*b.End) {
		badRequest(w, "")
		return
	}
	g.forward(w, r, body)
}

func (g *Gateway) listBookings(w http.ResponseWriter, r *http.Request) {
	if !g.checkPage(w, r) {
		return
	}
	if _, err := domain.ParseBookingState(r.URL.Query().Get("state")); err != nil {
		badRequest(w, err.Error())
		return
	}
	g.forward(w, r, nil)
}
